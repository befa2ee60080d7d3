package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. Every transition between the three is allowed.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// Appointment maps to the appointment table.
type Appointment struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	DateTime    time.Time  `db:"date_time" json:"date_time"`
	Status      string     `db:"status" json:"status"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	DentistID   uuid.UUID  `db:"dentist_id" json:"dentist_id"`
	AssistantID *uuid.UUID `db:"assistant_id" json:"assistant_id,omitempty"`
	RoomID      uuid.UUID  `db:"room_id" json:"room_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// ListItem is the calendar row: the appointment plus joined display fields.
type ListItem struct {
	Appointment
	PatientName string `json:"patient_name"`
	DentistName string `json:"dentist_name"`
	RoomNumber  string `json:"room_number"`
}

// RenderedTreatment is one billed line of a completed appointment.
type RenderedTreatment struct {
	TreatmentID uuid.UUID `json:"treatment_id"`
	Name        string    `json:"name"`
	Cost        float64   `json:"cost"`
	Quantity    int       `json:"quantity"`
}

// Detail is the appointment with display fields, the rendered treatment
// lines and the invoice total. The total sums cost per line; quantity is
// not factored in.
type Detail struct {
	Appointment
	PatientName  string              `json:"patient_name"`
	DentistName  string              `json:"dentist_name"`
	RoomNumber   string              `json:"room_number"`
	Treatments   []RenderedTreatment `json:"treatments"`
	InvoiceTotal float64             `json:"invoice_total"`
}
