package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/dentix/clinic/pkg/types"
)

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	BirthDate types.Date `db:"birth_date" json:"birth_date"`
	Gender    string     `db:"gender" json:"gender"`
	Address   *string    `db:"address" json:"address,omitempty"`
	Phone     *string    `db:"phone" json:"phone,omitempty"`
	Email     *string    `db:"email" json:"email,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// MedicalRecord maps to the medical_record table. There is at most one row
// per patient; it is created lazily on the first write.
type MedicalRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Diagnosis *string   `db:"diagnosis" json:"diagnosis,omitempty"`
	Allergies *string   `db:"allergies" json:"allergies,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
