package treatment

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

type Service struct {
	treatments Repository
}

func NewService(treatments Repository) *Service {
	return &Service{treatments: treatments}
}

func validate(t *Treatment, materials []MaterialReq) error {
	if t.Name == "" {
		return db.Invalid("name", "required")
	}
	if t.DurationMinutes <= 0 {
		return db.Invalid("duration_minutes", "must be positive")
	}
	if t.Cost < 0 {
		return db.Invalid("cost", "must not be negative")
	}
	for _, m := range materials {
		if m.MaterialID == uuid.Nil {
			return db.Invalid("materials", "material_id required")
		}
		if m.Quantity < 1 {
			return db.Invalid("materials", "quantity must be at least 1")
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error {
	if err := validate(t, materials); err != nil {
		return err
	}
	return s.treatments.Create(ctx, t, materials, equipment)
}

// Update replaces the treatment's scalars and both association sets. An
// empty set clears the stored associations, a nil set does too: the supplied
// sets are the full new state.
func (s *Service) Update(ctx context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error {
	if err := validate(t, materials); err != nil {
		return err
	}
	return s.treatments.Update(ctx, t, materials, equipment)
}

// Delete fails with db.ErrConflict when any appointment has the treatment
// on its rendered list.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.treatments.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, lp listing.Params) ([]*Treatment, error) {
	return s.treatments.List(ctx, search, lp)
}

func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	return s.treatments.GetDetail(ctx, id)
}
