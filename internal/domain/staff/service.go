package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

type Service struct {
	dentists   DentistRepository
	assistants AssistantRepository
}

func NewService(dentists DentistRepository, assistants AssistantRepository) *Service {
	return &Service{dentists: dentists, assistants: assistants}
}

func validateDentist(d *Dentist) error {
	if d.FirstName == "" {
		return db.Invalid("first_name", "required")
	}
	if d.LastName == "" {
		return db.Invalid("last_name", "required")
	}
	if d.Specialization == "" {
		return db.Invalid("specialization", "required")
	}
	if d.LicenseNumber == "" {
		return db.Invalid("license_number", "required")
	}
	if d.ExperienceYears < 0 {
		return db.Invalid("experience_years", "must not be negative")
	}
	return nil
}

func validateAssistant(a *Assistant) error {
	if a.FirstName == "" {
		return db.Invalid("first_name", "required")
	}
	if a.LastName == "" {
		return db.Invalid("last_name", "required")
	}
	if a.Position == "" {
		return db.Invalid("position", "required")
	}
	if a.ExperienceYears < 0 {
		return db.Invalid("experience_years", "must not be negative")
	}
	return nil
}

func (s *Service) CreateDentist(ctx context.Context, d *Dentist) error {
	if err := validateDentist(d); err != nil {
		return err
	}
	return s.dentists.Create(ctx, d)
}

func (s *Service) UpdateDentist(ctx context.Context, d *Dentist) error {
	if err := validateDentist(d); err != nil {
		return err
	}
	return s.dentists.Update(ctx, d)
}

// DeleteDentist fails with db.ErrConflict when the dentist still has
// appointments on file.
func (s *Service) DeleteDentist(ctx context.Context, id uuid.UUID) error {
	return s.dentists.Delete(ctx, id)
}

func (s *Service) ListDentists(ctx context.Context, search string, lp listing.Params) ([]*Dentist, error) {
	return s.dentists.List(ctx, search, lp)
}

func (s *Service) CreateAssistant(ctx context.Context, a *Assistant) error {
	if err := validateAssistant(a); err != nil {
		return err
	}
	return s.assistants.Create(ctx, a)
}

func (s *Service) UpdateAssistant(ctx context.Context, a *Assistant) error {
	if err := validateAssistant(a); err != nil {
		return err
	}
	return s.assistants.Update(ctx, a)
}

func (s *Service) DeleteAssistant(ctx context.Context, id uuid.UUID) error {
	return s.assistants.Delete(ctx, id)
}

func (s *Service) ListAssistants(ctx context.Context, lp listing.Params) ([]*Assistant, error) {
	return s.assistants.List(ctx, lp)
}
