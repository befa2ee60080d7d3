package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusCompleted: true, StatusCanceled: true,
}

// Create books the appointment. Status always starts as scheduled, whatever
// the caller sent.
func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.DateTime.IsZero() {
		return db.Invalid("date_time", "required")
	}
	if a.PatientID == uuid.Nil {
		return db.Invalid("patient_id", "required")
	}
	if a.DentistID == uuid.Nil {
		return db.Invalid("dentist_id", "required")
	}
	if a.RoomID == uuid.Nil {
		return db.Invalid("room_id", "required")
	}
	a.Status = StatusScheduled
	return s.appointments.Create(ctx, a)
}

func (s *Service) List(ctx context.Context, lp listing.Params) ([]*ListItem, error) {
	return s.appointments.List(ctx, lp)
}

func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	return s.appointments.GetDetail(ctx, id)
}

// SetStatus moves the appointment to any of the three states. Rendered
// treatment lines are replaced only when the new status is completed and a
// treatments array was supplied; cancel and revert leave billing history
// untouched.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string, treatments []uuid.UUID) error {
	if !validStatuses[status] {
		return db.Invalid("status", "must be scheduled, completed or canceled")
	}
	replace := status == StatusCompleted && treatments != nil
	return s.appointments.SetStatus(ctx, id, status, treatments, replace)
}
