package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

type Service struct {
	materials MaterialRepository
	equipment EquipmentRepository
	rooms     RoomRepository
}

func NewService(materials MaterialRepository, equipment EquipmentRepository, rooms RoomRepository) *Service {
	return &Service{materials: materials, equipment: equipment, rooms: rooms}
}

func validateMaterial(m *Material) error {
	if m.Name == "" {
		return db.Invalid("name", "required")
	}
	if m.ExpirationDate.IsZero() {
		return db.Invalid("expiration_date", "required")
	}
	return nil
}

var validStatuses = map[string]bool{
	StatusWorking: true, StatusRepair: true, StatusOutOfOrder: true,
}

func validateEquipment(e *Equipment) error {
	if e.Name == "" {
		return db.Invalid("name", "required")
	}
	if e.SerialNumber == "" {
		return db.Invalid("serial_number", "required")
	}
	if !validStatuses[e.Status] {
		return db.Invalid("status", "must be working, repair or out_of_order")
	}
	if e.RoomID == uuid.Nil {
		return db.Invalid("room_id", "required")
	}
	return nil
}

func (s *Service) CreateMaterial(ctx context.Context, m *Material) error {
	if err := validateMaterial(m); err != nil {
		return err
	}
	return s.materials.Create(ctx, m)
}

func (s *Service) UpdateMaterial(ctx context.Context, m *Material) error {
	if err := validateMaterial(m); err != nil {
		return err
	}
	return s.materials.Update(ctx, m)
}

// DeleteMaterial fails with db.ErrConflict when a treatment still lists
// the material as a requirement.
func (s *Service) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return s.materials.Delete(ctx, id)
}

func (s *Service) ListMaterials(ctx context.Context, lp listing.Params) ([]*Material, error) {
	return s.materials.List(ctx, lp)
}

func (s *Service) CreateEquipment(ctx context.Context, e *Equipment) error {
	if err := validateEquipment(e); err != nil {
		return err
	}
	return s.equipment.Create(ctx, e)
}

func (s *Service) UpdateEquipment(ctx context.Context, e *Equipment) error {
	if err := validateEquipment(e); err != nil {
		return err
	}
	return s.equipment.Update(ctx, e)
}

func (s *Service) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return s.equipment.Delete(ctx, id)
}

func (s *Service) ListEquipment(ctx context.Context, lp listing.Params) ([]*Equipment, error) {
	return s.equipment.List(ctx, lp)
}

func (s *Service) ListRooms(ctx context.Context) ([]*Room, error) {
	return s.rooms.List(ctx)
}
