package packerrepo

import (
	"context"
	"errors"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/packer"
	"packnow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackerRepository implements PackerRepository using GORM.
type GormPackerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackerRepository creates a new GORM packer repository.
func NewGormPackerRepository(db *gorm.DB, tracker aggregateTracker) *GormPackerRepository {
	return &GormPackerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new packer to the database.
func (r *GormPackerRepository) Add(ctx context.Context, aggregate *packer.Packer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing packer to the database.
// Uses Save rather than Updates so that availability can transition back to
// false without being skipped as a zero value.
func (r *GormPackerRepository) Update(ctx context.Context, aggregate *packer.Packer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a packer by ID.
func (r *GormPackerRepository) Get(ctx context.Context, id kernel.UUID) (*packer.Packer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all packers currently accepting assignments.
//
// Example:
//
//	availablePackers, err := repo.GetAllAvailable(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get available packers: %w", err)
//	}
//	for _, p := range availablePackers {
//		fmt.Printf("Available packer: %s\n", p.Name())
//	}
func (r *GormPackerRepository) GetAllAvailable(ctx context.Context) ([]*packer.Packer, error) {
	var dtos []PackerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "available = ?", true).Error; err != nil {
		return nil, err
	}

	packers := make([]*packer.Packer, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packers = append(packers, p)
	}

	return packers, nil
}
