package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/pkg/listing"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, lp listing.Params) ([]*Patient, error)

	GetRecord(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error)
	UpsertRecord(ctx context.Context, rec *MedicalRecord) error
}
