package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

var validGenders = map[string]bool{
	"male": true, "female": true, "other": true,
}

func validate(p *Patient) error {
	if p.FirstName == "" {
		return db.Invalid("first_name", "required")
	}
	if p.LastName == "" {
		return db.Invalid("last_name", "required")
	}
	if p.BirthDate.IsZero() {
		return db.Invalid("birth_date", "required")
	}
	if !validGenders[p.Gender] {
		return db.Invalid("gender", "must be male, female or other")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, lp listing.Params) ([]*Patient, error) {
	return s.patients.List(ctx, search, lp)
}

// GetRecord returns the patient's medical record, or db.ErrNotFound when the
// patient has none yet.
func (s *Service) GetRecord(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error) {
	return s.patients.GetRecord(ctx, patientID)
}

// UpsertRecord creates the record on first write and updates it in place on
// every later write; a patient never has more than one record. Writing a
// record for an unknown patient is NotFound, not a constraint failure.
func (s *Service) UpsertRecord(ctx context.Context, patientID uuid.UUID, diagnosis, allergies *string) (*MedicalRecord, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	rec := &MedicalRecord{
		PatientID: patientID,
		Diagnosis: diagnosis,
		Allergies: allergies,
	}
	if err := s.patients.UpsertRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
