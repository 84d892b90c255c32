package order_test

import (
	"fmt"
	"testing"

	"packnow/internal/core/domain/model/order"
	"packnow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Validate(t *testing.T) {
	t.Run("should validate recognized categories", func(t *testing.T) {
		validCategories := []order.Category{
			order.CategoryGift,
			order.CategoryElectronics,
			order.CategoryFood,
			order.CategoryDocuments,
			order.CategoryBusinessOrders,
			order.CategoryFragileItems,
			order.CategoryHouseShifting,
		}

		for _, category := range validCategories {
			t.Run(fmt.Sprintf("should validate %s", category.String()), func(t *testing.T) {
				require.NoError(t, category.Validate())
			})
		}
	})

	t.Run("should reject unrecognized categories", func(t *testing.T) {
		invalidCategories := []order.Category{
			"",
			"furniture",
			"Gift",
			"GIFT",
			"gift ",
		}

		for _, category := range invalidCategories {
			t.Run(fmt.Sprintf("should reject %q", string(category)), func(t *testing.T) {
				err := category.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "category is invalid")
			})
		}
	})
}

func TestFragility_Validate(t *testing.T) {
	t.Run("should validate recognized fragility levels", func(t *testing.T) {
		for _, fragility := range []order.Fragility{
			order.FragilityLow,
			order.FragilityMedium,
			order.FragilityHigh,
		} {
			require.NoError(t, fragility.Validate())
		}
	})

	t.Run("should reject unrecognized fragility levels", func(t *testing.T) {
		for _, fragility := range []order.Fragility{"", "extreme", "High"} {
			err := fragility.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "fragility is invalid")
		}
	})
}

func TestUrgency_Validate(t *testing.T) {
	t.Run("should validate recognized urgency levels", func(t *testing.T) {
		require.NoError(t, order.UrgencyNormal.Validate())
		require.NoError(t, order.UrgencyUrgent.Validate())
	})

	t.Run("should reject unrecognized urgency levels", func(t *testing.T) {
		for _, urgency := range []order.Urgency{"", "asap", "Urgent"} {
			err := urgency.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "urgency is invalid")
		}
	})
}
