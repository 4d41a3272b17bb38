package common

import (
	"errors"
	"fmt"
	"strings"

	"natanbot/domain/entities"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AmountRequest is any command taking a positive coin amount
type AmountRequest struct {
	Amount int64 `validate:"gt=0"`
}

// QuantityRequest is the optional quantity of /buy and /sell; zero means one
type QuantityRequest struct {
	Quantity int64 `validate:"gte=0,lte=1000"`
}

// VIPGrantRequest is the input of /vip add
type VIPGrantRequest struct {
	Days int `validate:"gt=0,lte=3650"`
}

// XPRangeRequest is the input of /xpconfig set-range
type XPRangeRequest struct {
	Min int64 `validate:"gt=0"`
	Max int64 `validate:"gtefield=Min"`
}

// MultiplierRequest is the input of /vip multiplier
type MultiplierRequest struct {
	Category string  `validate:"oneof=xp coins daily"`
	Value    float64 `validate:"gte=1,lte=10"`
}

// ShopItemRequest is the input of /economy set-item
type ShopItemRequest struct {
	Name  string `validate:"required,max=32"`
	Price int64  `validate:"gt=0"`
}

// Validate checks req against its tags and reports the first violation
// as a ValidationError
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	e := verrs[0]
	field := strings.ToLower(e.Field())
	return entities.NewValidationError(field, describe(e))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "max":
		return fmt.Sprintf("must have maximum length %s", e.Param())
	case "gtefield":
		return fmt.Sprintf("must not be below %s", strings.ToLower(e.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return fmt.Sprintf("is invalid (%s)", e.Tag())
	}
}
