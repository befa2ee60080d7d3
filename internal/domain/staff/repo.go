package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/pkg/listing"
)

type DentistRepository interface {
	Create(ctx context.Context, d *Dentist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Dentist, error)
	Update(ctx context.Context, d *Dentist) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, lp listing.Params) ([]*Dentist, error)
}

type AssistantRepository interface {
	Create(ctx context.Context, a *Assistant) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assistant, error)
	Update(ctx context.Context, a *Assistant) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, lp listing.Params) ([]*Assistant, error)
}
