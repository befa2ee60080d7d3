package appointment

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentix/clinic/internal/platform/db"
	"github.com/dentix/clinic/pkg/listing"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.List)
	api.POST("/appointments", h.Create)
	api.GET("/appointments/:id", h.GetDetail)
	api.PUT("/appointments/:id", h.SetStatus)
}

type createRequest struct {
	DateTime    time.Time  `json:"date_time"`
	PatientID   uuid.UUID  `json:"patient_id"`
	DentistID   uuid.UUID  `json:"dentist_id"`
	AssistantID *uuid.UUID `json:"assistant_id"`
	RoomID      uuid.UUID  `json:"room_id"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a := &Appointment{
		DateTime:    req.DateTime,
		PatientID:   req.PatientID,
		DentistID:   req.DentistID,
		AssistantID: req.AssistantID,
		RoomID:      req.RoomID,
	}
	if err := h.svc.Create(c.Request().Context(), a); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context(), listing.FromContext(c))
	if err != nil {
		return db.HTTPError(err)
	}
	if items == nil {
		items = []*ListItem{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d, err := h.svc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

type statusRequest struct {
	Status     string      `json:"status"`
	Treatments []uuid.UUID `json:"treatments"`
}

func (h *Handler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SetStatus(c.Request().Context(), id, req.Status, req.Treatments); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment updated"})
}
