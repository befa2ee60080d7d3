package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestStats_Handler(t *testing.T) {
	repo := newMockStatsRepo()
	repo.patients = 42
	repo.top = "Cleaning"
	svc := newTestService(repo, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Stats(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var result map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &result)
	if result["patients_count"] != float64(42) {
		t.Errorf("patients_count = %v, want 42", result["patients_count"])
	}
	if result["top_treatment"] != "Cleaning" {
		t.Errorf("top_treatment = %v, want Cleaning", result["top_treatment"])
	}
	if result["monthly_revenue"] != float64(0) {
		t.Errorf("monthly_revenue = %v, want 0", result["monthly_revenue"])
	}
}
