package common

import (
	"errors"
	"testing"

	"natanbot/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{}
		field   string
		message string
	}{
		{"amount zero", AmountRequest{Amount: 0}, "amount", "must be greater than 0"},
		{"days negative", VIPGrantRequest{Days: -3}, "days", "must be greater than 0"},
		{"xp range inverted", XPRangeRequest{Min: 30, Max: 10}, "max", "must not be below min"},
		{"unknown multiplier", MultiplierRequest{Category: "karma", Value: 2}, "category", "must be one of: xp, coins, daily"},
		{"multiplier below one", MultiplierRequest{Category: "xp", Value: 0.5}, "value", "must be at least 1"},
		{"empty item", ShopItemRequest{Name: "", Price: 10}, "name", "is required"},
		{"quantity too large", QuantityRequest{Quantity: 7e15}, "quantity", "must be at most 1000"},
		{"quantity negative", QuantityRequest{Quantity: -1}, "quantity", "must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)

			var verr *entities.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, Validate(AmountRequest{Amount: 1}))
	assert.NoError(t, Validate(XPRangeRequest{Min: 10, Max: 10}))
	assert.NoError(t, Validate(MultiplierRequest{Category: "coins", Value: 1}))
	assert.NoError(t, Validate(QuantityRequest{Quantity: 0}))
	assert.NoError(t, Validate(QuantityRequest{Quantity: entities.MaxItemQuantity}))
	assert.Error(t, Validate(QuantityRequest{Quantity: entities.MaxItemQuantity + 1}))
}
