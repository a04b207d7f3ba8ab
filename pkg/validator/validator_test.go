package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	OwnerID uuid.UUID       `validate:"uuid_required"`
	Cost    decimal.Decimal `validate:"decimal_gte0"`
	Qty     int             `validate:"required,gt=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		errs := ValidateStruct(priced{OwnerID: uuid.New(), Cost: decimal.Zero, Qty: 1})
		assert.Empty(t, errs)
	})

	t.Run("nil uuid", func(t *testing.T) {
		errs := ValidateStruct(priced{Cost: decimal.NewFromInt(1), Qty: 1})
		require.Len(t, errs, 1)
		assert.Equal(t, "priced.OwnerID", errs[0].FailedField)
		assert.Equal(t, "uuid_required", errs[0].Tag)
	})

	t.Run("negative decimal", func(t *testing.T) {
		errs := ValidateStruct(priced{OwnerID: uuid.New(), Cost: decimal.NewFromInt(-1), Qty: 1})
		require.Len(t, errs, 1)
		assert.Equal(t, "decimal_gte0", errs[0].Tag)
	})

	t.Run("zero quantity", func(t *testing.T) {
		errs := ValidateStruct(priced{OwnerID: uuid.New(), Qty: 0})
		require.Len(t, errs, 1)
		assert.Equal(t, "priced.Qty", errs[0].FailedField)
		assert.Equal(t, "required", errs[0].Tag)
	})
}
