package treatment

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo, *mockTreatmentRepo) {
	svc, repo := newTestService()
	return NewHandler(svc), echo.New(), repo
}

func TestCreateTreatment_Handler(t *testing.T) {
	h, e, repo := newTestHandler()
	matID := uuid.New()
	body := `{"name":"Filling","duration_minutes":45,"cost":50,"materials":[{"material_id":"` +
		matID.String() + `","quantity":2}],"equipment":[]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var result map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &result)
	id, _ := uuid.Parse(result["id"].(string))
	if len(repo.materials[id]) != 1 || repo.materials[id][0].Quantity != 2 {
		t.Errorf("association not written: %+v", repo.materials[id])
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	err := h.GetDetail(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", he.Code)
	}
}

func TestGetDetail_EmptySetsAreArrays(t *testing.T) {
	h, e, _ := newTestHandler()
	tr := validTreatment()
	h.svc.Create(nil, tr, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tr.ID.String())
	if err := h.GetDetail(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &result)
	if _, ok := result["materials"].([]interface{}); !ok {
		t.Errorf("materials should be an array, got %T", result["materials"])
	}
	if _, ok := result["equipment"].([]interface{}); !ok {
		t.Errorf("equipment should be an array, got %T", result["equipment"])
	}
}

func TestDeleteTreatment_Conflict(t *testing.T) {
	h, e, repo := newTestHandler()
	tr := validTreatment()
	h.svc.Create(nil, tr, nil, nil)
	repo.referenced[tr.ID] = true

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tr.ID.String())
	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", he.Code)
	}
}
