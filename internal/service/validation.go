package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/donatehub/donatehub-go/internal/model"
)

// validate checks the `validate` struct tags of request models. Field names
// in reported errors are the json names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	return v
}

// validateStruct returns a *ValidationError listing every failed field of s,
// or nil.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, model.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return fmt.Sprintf("does not match %s", strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// campaignInput is the writable part of c, validated after a patch is applied.
func campaignInput(c *model.Campaign) model.CampaignInput {
	return model.CampaignInput{
		Name:     c.Name,
		Cause:    c.Cause,
		Location: c.Location,
		Item:     c.Item,
		Image:    c.Image,
		Category: c.Category,
	}
}
