package api

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"coolassistant.app/internal/core/survey"
	"coolassistant.app/pkg/errors"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators adds the survey vocabulary tags to gin's validator engine
func registerValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("feeling", func(fl validator.FieldLevel) bool {
			_, err := survey.ParseFeeling(fl.Field().String())
			return err == nil
		}); err != nil {
			validatorsErr = err
			return
		}
		validatorsErr = v.RegisterValidation("issue", func(fl validator.FieldLevel) bool {
			_, err := survey.ParseIssue(fl.Field().String())
			return err == nil
		})
	})
	return validatorsErr
}

// bindError turns a binding failure into a readable validation error
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.NewValidationError("malformed request body")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "feeling":
			msgs = append(msgs, fmt.Sprintf("feeling %q is not one of good, neutral, uncomfortable, bad", fe.Value()))
		case "issue":
			msgs = append(msgs, fmt.Sprintf("unknown issue %q", fe.Value()))
		case "latitude":
			msgs = append(msgs, "latitude must be between -90 and 90")
		case "longitude":
			msgs = append(msgs, "longitude must be between -180 and 180")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return errors.NewValidationError(strings.Join(msgs, "; "))
}
