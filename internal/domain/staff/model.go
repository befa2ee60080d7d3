package staff

import (
	"time"

	"github.com/google/uuid"
)

// Dentist maps to the dentist table. Schedule is the free-text weekly
// schedule shown on the staff page.
type Dentist struct {
	ID              uuid.UUID `db:"id" json:"id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Specialization  string    `db:"specialization" json:"specialization"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	LicenseNumber   string    `db:"license_number" json:"license_number"`
	Schedule        *string   `db:"schedule" json:"schedule,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Assistant maps to the assistant table.
type Assistant struct {
	ID              uuid.UUID `db:"id" json:"id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Position        string    `db:"position" json:"position"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
