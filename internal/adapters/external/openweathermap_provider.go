package external

import (
	"context"
	"net/url"
	"strings"
	"time"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter serves current air pollution, the hourly
// pollution forecast and the 3-hourly temperature forecast.
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating the OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type owmComponents struct {
	PM25 *float64 `json:"pm2_5"`
	PM10 *float64 `json:"pm10"`
	NO2  *float64 `json:"no2"`
}

type owmPollutionResponse struct {
	List []struct {
		Dt         int64         `json:"dt"`
		Components owmComponents `json:"components"`
	} `json:"list"`
}

type owmForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(params.Client, params.Timeout),
		logger:  params.Logger,
	}
}

func (p *OpenWeatherMapProviderAdapter) get(ctx context.Context, path string, query url.Values, target interface{}) error {
	if p.apiKey == "" {
		return errors.NewExternalAPIError("OpenWeatherMap API key is not configured", nil)
	}
	query.Set("appid", p.apiKey)
	return getJSON(ctx, p.client, p.logger, jsonRequest{
		service: "OpenWeatherMap",
		baseURL: p.baseURL,
		path:    path,
		query:   query,
	}, target)
}

func pointQuery(lat, lon float64) url.Values {
	query := url.Values{}
	query.Set("lat", formatCoord(lat))
	query.Set("lon", formatCoord(lon))
	return query
}

// GetCurrentAirQuality reads /air_pollution. OpenWeatherMap has no European AQI,
// so that reading is left empty.
func (p *OpenWeatherMapProviderAdapter) GetCurrentAirQuality(ctx context.Context, lat, lon float64) (*ports.AirQualityData, error) {
	var resp owmPollutionResponse
	if err := p.get(ctx, "/air_pollution", pointQuery(lat, lon), &resp); err != nil {
		return nil, err
	}
	if len(resp.List) == 0 {
		return nil, errors.NewExternalAPIError("OpenWeatherMap returned no air pollution data", nil)
	}

	current := resp.List[0]
	return &ports.AirQualityData{
		PM25:       current.Components.PM25,
		PM10:       current.Components.PM10,
		NO2:        current.Components.NO2,
		Provider:   p.GetProviderName(),
		ObservedAt: time.Unix(current.Dt, 0).UTC(),
	}, nil
}

// GetPollutionForecast reads the hourly /air_pollution/forecast series
func (p *OpenWeatherMapProviderAdapter) GetPollutionForecast(ctx context.Context, lat, lon float64) ([]ports.PollutionSample, error) {
	var resp owmPollutionResponse
	if err := p.get(ctx, "/air_pollution/forecast", pointQuery(lat, lon), &resp); err != nil {
		return nil, err
	}

	samples := make([]ports.PollutionSample, 0, len(resp.List))
	for _, item := range resp.List {
		if item.Components.PM10 == nil {
			continue
		}
		samples = append(samples, ports.PollutionSample{
			Time: time.Unix(item.Dt, 0).UTC(),
			PM10: *item.Components.PM10,
		})
	}
	return samples, nil
}

// GetTemperatureForecast reads the 5 day / 3 hour /forecast series for a city
func (p *OpenWeatherMapProviderAdapter) GetTemperatureForecast(ctx context.Context, city string) (*ports.TemperatureForecast, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("units", "metric")

	var resp owmForecastResponse
	if err := p.get(ctx, "/forecast", query, &resp); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("city not found: " + city)
		}
		return nil, err
	}

	forecast := &ports.TemperatureForecast{
		City:           resp.City.Name,
		TimezoneOffset: resp.City.Timezone,
		Samples:        make([]ports.TemperatureSample, 0, len(resp.List)),
	}
	for _, item := range resp.List {
		forecast.Samples = append(forecast.Samples, ports.TemperatureSample{
			Time:    time.Unix(item.Dt, 0).UTC(),
			TempMax: item.Main.TempMax,
		})
	}
	return forecast, nil
}

func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}
