package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Survey
	SurveyRepository SurveyRepository
	DraftStore       DraftStore

	// Forecast
	AirQualityProvider AirQualityProviderManager
	ForecastProvider   ForecastProvider
	ForecastCache      JSONCache

	// Place
	Geocoder   Geocoder
	PlaceCache JSONCache

	// Cache
	CacheMetrics CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Database       interface{}
}
