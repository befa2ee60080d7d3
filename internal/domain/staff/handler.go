package staff

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
	api.GET("/dentists", h.ListDentists)
	api.POST("/dentists", h.CreateDentist)
	api.PUT("/dentists/:id", h.UpdateDentist)
	api.DELETE("/dentists/:id", h.DeleteDentist)

	api.GET("/assistants", h.ListAssistants)
	api.POST("/assistants", h.CreateAssistant)
	api.PUT("/assistants/:id", h.UpdateAssistant)
	api.DELETE("/assistants/:id", h.DeleteAssistant)
}

func (h *Handler) ListDentists(c echo.Context) error {
	items, err := h.svc.ListDentists(c.Request().Context(), c.QueryParam("search"), listing.FromContext(c))
	if err != nil {
		return db.HTTPError(err)
	}
	if items == nil {
		items = []*Dentist{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateDentist(c echo.Context) error {
	var d Dentist
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDentist(c.Request().Context(), &d); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) UpdateDentist(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var d Dentist
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = id
	if err := h.svc.UpdateDentist(c.Request().Context(), &d); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDentist(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteDentist(c.Request().Context(), id); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "dentist deleted"})
}

func (h *Handler) ListAssistants(c echo.Context) error {
	items, err := h.svc.ListAssistants(c.Request().Context(), listing.FromContext(c))
	if err != nil {
		return db.HTTPError(err)
	}
	if items == nil {
		items = []*Assistant{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateAssistant(c echo.Context) error {
	var a Assistant
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateAssistant(c.Request().Context(), &a); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAssistant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var a Assistant
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.ID = id
	if err := h.svc.UpdateAssistant(c.Request().Context(), &a); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAssistant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteAssistant(c.Request().Context(), id); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "assistant deleted"})
}
