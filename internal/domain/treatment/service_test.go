package treatment

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

// -- Mock Repository --

type mockTreatmentRepo struct {
	store      map[uuid.UUID]*Treatment
	materials  map[uuid.UUID][]MaterialReq
	equipment  map[uuid.UUID][]uuid.UUID
	referenced map[uuid.UUID]bool // treatments rendered on an appointment
}

func newMockTreatmentRepo() *mockTreatmentRepo {
	return &mockTreatmentRepo{
		store:      make(map[uuid.UUID]*Treatment),
		materials:  make(map[uuid.UUID][]MaterialReq),
		equipment:  make(map[uuid.UUID][]uuid.UUID),
		referenced: make(map[uuid.UUID]bool),
	}
}

// setAssociations mirrors the upsert semantics: duplicate ids collapse to
// the last occurrence.
func (m *mockTreatmentRepo) setAssociations(id uuid.UUID, materials []MaterialReq, equipment []uuid.UUID) {
	byMat := make(map[uuid.UUID]int)
	var mats []MaterialReq
	for _, mr := range materials {
		if i, ok := byMat[mr.MaterialID]; ok {
			mats[i] = mr
			continue
		}
		byMat[mr.MaterialID] = len(mats)
		mats = append(mats, mr)
	}
	seen := make(map[uuid.UUID]bool)
	var eqs []uuid.UUID
	for _, e := range equipment {
		if seen[e] {
			continue
		}
		seen[e] = true
		eqs = append(eqs, e)
	}
	m.materials[id] = mats
	m.equipment[id] = eqs
}

func (m *mockTreatmentRepo) Create(_ context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	m.store[t.ID] = t
	m.setAssociations(t.ID, materials, equipment)
	return nil
}

func (m *mockTreatmentRepo) Update(_ context.Context, t *Treatment, materials []MaterialReq, equipment []uuid.UUID) error {
	if _, ok := m.store[t.ID]; !ok {
		return db.ErrNotFound
	}
	m.store[t.ID] = t
	m.setAssociations(t.ID, materials, equipment)
	return nil
}

func (m *mockTreatmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.store[id]; !ok {
		return db.ErrNotFound
	}
	if m.referenced[id] {
		return db.ErrConflict
	}
	delete(m.store, id)
	delete(m.materials, id)
	delete(m.equipment, id)
	return nil
}

func (m *mockTreatmentRepo) List(_ context.Context, search string, lp listing.Params) ([]*Treatment, error) {
	var r []*Treatment
	for _, t := range m.store {
		if search != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(search)) {
			continue
		}
		r = append(r, t)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	start, end := lp.Window(len(r))
	return r[start:end], nil
}

func (m *mockTreatmentRepo) GetDetail(_ context.Context, id uuid.UUID) (*Detail, error) {
	t, ok := m.store[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	d := &Detail{Treatment: *t, Materials: []MaterialReq{}, Equipment: []uuid.UUID{}}
	d.Materials = append(d.Materials, m.materials[id]...)
	d.Equipment = append(d.Equipment, m.equipment[id]...)
	return d, nil
}

func newTestService() (*Service, *mockTreatmentRepo) {
	repo := newMockTreatmentRepo()
	return NewService(repo), repo
}

func validTreatment() *Treatment {
	return &Treatment{Name: "Filling", DurationMinutes: 45, Cost: 50}
}

// -- Service Tests --

func TestCreateTreatment_AssociationRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	matA, matB := uuid.New(), uuid.New()
	eq := uuid.New()
	tr := validTreatment()
	mats := []MaterialReq{{MaterialID: matA, Quantity: 2}, {MaterialID: matB, Quantity: 1}}

	if err := svc.Create(context.Background(), tr, mats, []uuid.UUID{eq}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := svc.GetDetail(context.Background(), tr.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Materials) != 2 {
		t.Fatalf("materials = %d, want 2", len(d.Materials))
	}
	if len(d.Equipment) != 1 || d.Equipment[0] != eq {
		t.Errorf("equipment = %v, want [%v]", d.Equipment, eq)
	}
}

func TestCreateTreatment_Validation(t *testing.T) {
	svc, _ := newTestService()
	cases := []struct {
		name  string
		mut   func(*Treatment)
		mats  []MaterialReq
		field string
	}{
		{"missing name", func(tr *Treatment) { tr.Name = "" }, nil, "name"},
		{"zero duration", func(tr *Treatment) { tr.DurationMinutes = 0 }, nil, "duration_minutes"},
		{"negative cost", func(tr *Treatment) { tr.Cost = -1 }, nil, "cost"},
		{"zero material quantity", func(*Treatment) {}, []MaterialReq{{MaterialID: uuid.New(), Quantity: 0}}, "materials"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTreatment()
			tc.mut(tr)
			err := svc.Create(context.Background(), tr, tc.mats, nil)
			var ve *db.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestUpdateTreatment_EmptyArraysClear(t *testing.T) {
	svc, _ := newTestService()
	tr := validTreatment()
	mats := []MaterialReq{{MaterialID: uuid.New(), Quantity: 2}}
	svc.Create(context.Background(), tr, mats, []uuid.UUID{uuid.New()})

	if err := svc.Update(context.Background(), tr, []MaterialReq{}, []uuid.UUID{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, _ := svc.GetDetail(context.Background(), tr.ID)
	if len(d.Materials) != 0 || len(d.Equipment) != 0 {
		t.Errorf("empty arrays must clear both sets, got %d materials, %d equipment",
			len(d.Materials), len(d.Equipment))
	}
}

func TestUpdateTreatment_FullReplace(t *testing.T) {
	svc, _ := newTestService()
	tr := validTreatment()
	old := uuid.New()
	svc.Create(context.Background(), tr, []MaterialReq{{MaterialID: old, Quantity: 1}}, nil)

	repl := uuid.New()
	if err := svc.Update(context.Background(), tr, []MaterialReq{{MaterialID: repl, Quantity: 3}}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, _ := svc.GetDetail(context.Background(), tr.ID)
	if len(d.Materials) != 1 || d.Materials[0].MaterialID != repl || d.Materials[0].Quantity != 3 {
		t.Errorf("replace must drop old set entirely, got %+v", d.Materials)
	}
}

func TestUpdateTreatment_DuplicateMaterialLastWins(t *testing.T) {
	svc, _ := newTestService()
	tr := validTreatment()
	mat := uuid.New()
	mats := []MaterialReq{{MaterialID: mat, Quantity: 1}, {MaterialID: mat, Quantity: 4}}
	if err := svc.Create(context.Background(), tr, mats, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, _ := svc.GetDetail(context.Background(), tr.ID)
	if len(d.Materials) != 1 || d.Materials[0].Quantity != 4 {
		t.Errorf("duplicate id must collapse to last quantity, got %+v", d.Materials)
	}
}

func TestUpdateTreatment_NotFound(t *testing.T) {
	svc, _ := newTestService()
	tr := validTreatment()
	tr.ID = uuid.New()
	if err := svc.Update(context.Background(), tr, nil, nil); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTreatment_Rendered(t *testing.T) {
	svc, repo := newTestService()
	tr := validTreatment()
	svc.Create(context.Background(), tr, nil, nil)
	repo.referenced[tr.ID] = true

	if err := svc.Delete(context.Background(), tr.ID); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if _, ok := repo.store[tr.ID]; !ok {
		t.Error("treatment row should survive a refused delete")
	}
}

func TestListTreatments_Alphabetical(t *testing.T) {
	svc, _ := newTestService()
	for _, name := range []string{"Whitening", "Cleaning", "Filling"} {
		tr := validTreatment()
		tr.Name = name
		svc.Create(context.Background(), tr, nil, nil)
	}

	items, err := svc.List(context.Background(), "", listing.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 || items[0].Name != "Cleaning" || items[2].Name != "Whitening" {
		t.Errorf("expected alphabetical order, got %+v", items)
	}
}
