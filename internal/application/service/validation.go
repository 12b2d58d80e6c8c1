package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report field names the way clients send them
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// compare decimals numerically in gt/gte rules
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ IsValid() bool })
		return ok && e.IsValid()
	})

	v.RegisterStructValidation(validateMoney, LineItemInput{}, RecordPaymentInput{}, CreateServiceInput{})

	return v
}

// validateMoney rejects quantities and amounts with sub-cent precision
func validateMoney(sl validator.StructLevel) {
	check := func(d decimal.Decimal, name, field string) {
		if !entity.HasMoneyScale(d) {
			sl.ReportError(d, name, field, "money", "")
		}
	}

	switch in := sl.Current().Interface().(type) {
	case LineItemInput:
		check(in.Quantity, "quantity", "Quantity")
		check(in.Rate, "rate", "Rate")
	case RecordPaymentInput:
		check(in.Amount, "amount", "Amount")
	case CreateServiceInput:
		check(in.Price, "price", "Price")
	}
}

// validateInput checks the struct tags of input and maps failures to field errors
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewBadRequestError(err.Error())
	}

	fieldErrors := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return apperror.NewValidationError(fieldErrors)
}

// fieldPath drops the root struct name, e.g. "items[0].quantity"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "enum":
		return "is not a supported value"
	case "money":
		return fmt.Sprintf("must have at most %d decimal places", entity.MoneyPlaces)
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

// storeError turns a failing store call into a BackendUnavailable error.
// Application errors pass through unchanged.
func storeError(err error) error {
	if err == nil || apperror.IsAppError(err) {
		return err
	}
	return apperror.NewBackendUnavailableError(err)
}
