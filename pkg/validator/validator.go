package validator

import (
	"reflect"
	"strconv"

	"medical-scheduling-api/pkg/helper"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Helper-backed rules; DTOs opt in through their validate tags.
	_ = v.RegisterValidation("phone", fieldRule(helper.IsValidPhoneNumber))
	_ = v.RegisterValidation("dni", fieldRule(helper.IsValidIdentityNumber))
	_ = v.RegisterValidation("strong_password", fieldRule(helper.IsStrongPassword))

	return &CustomValidator{
		validator: v,
	}
}

// fieldRule adapts a string predicate to string and integer fields.
func fieldRule(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.String:
			return check(field.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return check(strconv.FormatInt(field.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return check(strconv.FormatUint(field.Uint(), 10))
		default:
			return false
		}
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "dni":
				errors[field] = field + " must be a valid national identity number"
			case "strong_password":
				errors[field] = field + " must contain upper and lower case letters, a digit and a symbol"
			case "http_url":
				errors[field] = field + " must be an http or https URL"
			case "ip", "ipv4", "ipv6":
				errors[field] = field + " must be a valid IP address"
			case "credit_card", "luhn_checksum":
				errors[field] = field + " must be a valid card number"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
