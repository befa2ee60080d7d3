package patient

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
	"github.com/dentix/clinic/pkg/types"
)

// -- Mock Repository --

type mockPatientRepo struct {
	store      map[uuid.UUID]*Patient
	records    map[uuid.UUID]*MedicalRecord // keyed by patient id
	referenced map[uuid.UUID]bool           // patients with appointments
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{
		store:      make(map[uuid.UUID]*Patient),
		records:    make(map[uuid.UUID]*MedicalRecord),
		referenced: make(map[uuid.UUID]bool),
	}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.store[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.store[p.ID]; !ok {
		return db.ErrNotFound
	}
	m.store[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.store[id]; !ok {
		return db.ErrNotFound
	}
	if m.referenced[id] {
		return db.ErrConflict
	}
	delete(m.store, id)
	return nil
}

func (m *mockPatientRepo) List(_ context.Context, search string, lp listing.Params) ([]*Patient, error) {
	var r []*Patient
	for _, p := range m.store {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.LastName), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(p.FirstName), strings.ToLower(search)) {
			continue
		}
		r = append(r, p)
	}
	start, end := lp.Window(len(r))
	return r[start:end], nil
}

func (m *mockPatientRepo) GetRecord(_ context.Context, patientID uuid.UUID) (*MedicalRecord, error) {
	rec, ok := m.records[patientID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return rec, nil
}

func (m *mockPatientRepo) UpsertRecord(_ context.Context, rec *MedicalRecord) error {
	if existing, ok := m.records[rec.PatientID]; ok {
		rec.ID = existing.ID
	} else {
		rec.ID = uuid.New()
	}
	rec.UpdatedAt = time.Now()
	m.records[rec.PatientID] = rec
	return nil
}

func validPatient() *Patient {
	return &Patient{
		FirstName: "Anna",
		LastName:  "Kowalski",
		BirthDate: types.Date{Time: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)},
		Gender:    "female",
	}
}

// -- Service Tests --

func TestCreatePatient_Success(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreatePatient_MissingName(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	p := validPatient()
	p.FirstName = ""
	err := svc.Create(context.Background(), p)
	var ve *db.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "first_name" {
		t.Errorf("field = %q, want first_name", ve.Field)
	}
}

func TestCreatePatient_InvalidGender(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	p := validPatient()
	p.Gender = "unknown"
	err := svc.Create(context.Background(), p)
	var ve *db.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdatePatient_NotFound(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	p := validPatient()
	p.ID = uuid.New()
	if err := svc.Update(context.Background(), p); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePatient_Referenced(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	p := validPatient()
	svc.Create(context.Background(), p)
	repo.referenced[p.ID] = true

	if err := svc.Delete(context.Background(), p.ID); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if _, ok := repo.store[p.ID]; !ok {
		t.Error("patient row should survive a refused delete")
	}
}

func TestListPatients_Search(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	a := validPatient()
	svc.Create(context.Background(), a)
	b := validPatient()
	b.LastName = "Nowak"
	svc.Create(context.Background(), b)

	items, err := svc.List(context.Background(), "nowak", listing.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].LastName != "Nowak" {
		t.Errorf("search returned %d items, want the single Nowak match", len(items))
	}
}

func TestUpsertRecord_SingleRowPerPatient(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	p := validPatient()
	svc.Create(context.Background(), p)

	d1 := "caries"
	first, err := svc.UpsertRecord(context.Background(), p.ID, &d1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d2 := "pulpitis"
	al := "penicillin"
	second, err := svc.UpsertRecord(context.Background(), p.ID, &d2, &al)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Error("second upsert must update the existing record, not create another")
	}
	if len(repo.records) != 1 {
		t.Errorf("records stored = %d, want 1", len(repo.records))
	}
	got, _ := svc.GetRecord(context.Background(), p.ID)
	if got.Diagnosis == nil || *got.Diagnosis != "pulpitis" {
		t.Errorf("diagnosis not updated: %v", got.Diagnosis)
	}
}

func TestUpsertRecord_UnknownPatient(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	d := "caries"
	if _, err := svc.UpsertRecord(context.Background(), uuid.New(), &d, nil); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRecord_None(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	if _, err := svc.GetRecord(context.Background(), uuid.New()); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
