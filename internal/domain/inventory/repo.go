package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/pkg/listing"
)

type MaterialRepository interface {
	Create(ctx context.Context, m *Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*Material, error)
	Update(ctx context.Context, m *Material) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, lp listing.Params) ([]*Material, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error)
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, lp listing.Params) ([]*Equipment, error)
}

type RoomRepository interface {
	List(ctx context.Context) ([]*Room, error)
}
