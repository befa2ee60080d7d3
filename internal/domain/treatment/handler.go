package treatment

import (
	"net/http"

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
	api.GET("/treatments", h.List)
	api.POST("/treatments", h.Create)
	api.GET("/treatments/:id", h.GetDetail)
	api.PUT("/treatments/:id", h.Update)
	api.DELETE("/treatments/:id", h.Delete)
}

type treatmentRequest struct {
	Name            string        `json:"name"`
	Description     *string       `json:"description"`
	DurationMinutes int           `json:"duration_minutes"`
	Cost            float64       `json:"cost"`
	Materials       []MaterialReq `json:"materials"`
	Equipment       []uuid.UUID   `json:"equipment"`
}

func (req *treatmentRequest) toModel() *Treatment {
	return &Treatment{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Cost:            req.Cost,
	}
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context(), c.QueryParam("search"), listing.FromContext(c))
	if err != nil {
		return db.HTTPError(err)
	}
	if items == nil {
		items = []*Treatment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c echo.Context) error {
	var req treatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t := req.toModel()
	if err := h.svc.Create(c.Request().Context(), t, req.Materials, req.Equipment); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, t)
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

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req treatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t := req.toModel()
	t.ID = id
	if err := h.svc.Update(c.Request().Context(), t, req.Materials, req.Equipment); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "treatment deleted"})
}
