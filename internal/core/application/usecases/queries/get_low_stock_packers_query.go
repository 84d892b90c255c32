package queries

import (
	"errors"
	"math"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/pkg/errs"
	"packnow/internal/pkg/guard"
)

var (
	ErrGetLowStockPackersQueryIsNotConstructed = errors.New(
		"GetLowStockPackersQuery must be created via NewGetLowStockPackersQuery constructor",
	)
)

// GetLowStockPackersQuery retrieves packers whose stock of any material has
// fallen below a threshold. Used to drive restocking decisions.
//
// Example:
//
//	query, err := NewGetLowStockPackersQuery(10)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetLowStockPackersQueryHandler(db)
//
//	packers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get low stock packers: %w", err)
//	}
//
//	for _, packer := range packers {
//	    fmt.Printf("Packer %s is low on %d materials\n", packer.Name, len(packer.LowItems))
//	}
type GetLowStockPackersQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockPackersQuery creates a query to retrieve packers running low
// on packaging materials. The threshold must be positive.
func NewGetLowStockPackersQuery(threshold int) (GetLowStockPackersQuery, error) {
	if threshold <= 0 {
		return GetLowStockPackersQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 1, math.MaxInt)
	}

	return GetLowStockPackersQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Threshold returns the stock level below which a material counts as low.
func (q GetLowStockPackersQuery) Threshold() int {
	return q.threshold
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockPackersQueryIsNotConstructed if validation fails.
func (q GetLowStockPackersQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockPackersQueryIsNotConstructed)
}

// GetLowStockPackersQueryResponse represents a packer below the stock threshold.
// LowItems maps material names to their current quantity.
type GetLowStockPackersQueryResponse struct {
	ID       kernel.UUID
	Name     string
	LowItems map[string]int
}
