package validation

import (
	"testing"

	"vet-clinic/internal/platform/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string          `json:"name" validate:"required"`
	Email  string          `json:"email" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
	Owner  *int64          `json:"owner_id" validate:"required"`
}

func TestStruct_OK(t *testing.T) {
	id := int64(1)
	err := Struct(sample{Name: "Milo", Email: "a@b.c", Amount: decimal.RequireFromString("10.50"), Owner: &id})
	require.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Name: "Milo"})
	require.Error(t, err)
	require.True(t, apperr.IsValidation(err))

	fields := apperr.Fields(err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"email", "owner_id"}, names)
	assert.Contains(t, err.Error(), "email is required")
}

func TestStruct_NegativeDecimal(t *testing.T) {
	id := int64(1)
	err := Struct(sample{Name: "x", Email: "y", Amount: decimal.NewFromInt(-5), Owner: &id})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be greater than or equal to 0")
}
