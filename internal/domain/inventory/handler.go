package inventory

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
	api.GET("/materials", h.ListMaterials)
	api.POST("/materials", h.CreateMaterial)
	api.PUT("/materials/:id", h.UpdateMaterial)
	api.DELETE("/materials/:id", h.DeleteMaterial)

	api.GET("/equipment", h.ListEquipment)
	api.POST("/equipment", h.CreateEquipment)
	api.PUT("/equipment/:id", h.UpdateEquipment)
	api.DELETE("/equipment/:id", h.DeleteEquipment)

	api.GET("/rooms", h.ListRooms)
}

func (h *Handler) ListMaterials(c echo.Context) error {
	items, err := h.svc.ListMaterials(c.Request().Context(), listing.FromContext(c))
	if err != nil {
		return db.HTTPError(err)
	}
	if items == nil {
		items = []*Material{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateMaterial(c echo.Context) error {
	var m Material
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateMaterial(c.Request().Context(), &m); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateMaterial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var m Material
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m.ID = id
	if err := h.svc.UpdateMaterial(c.Request().Context(), &m); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMaterial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteMaterial(c.Request().Context(), id); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "material deleted"})
}

func (h *Handler) ListEquipment(c echo.Context) error {
	items, err := h.svc.ListEquipment(c.Request().Context(), listing.FromContext(c))
	if err != nil {
		return db.HTTPError(err)
	}
	if items == nil {
		items = []*Equipment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateEquipment(c echo.Context) error {
	var e Equipment
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateEquipment(c.Request().Context(), &e); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler) UpdateEquipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var e Equipment
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e.ID = id
	if err := h.svc.UpdateEquipment(c.Request().Context(), &e); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEquipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteEquipment(c.Request().Context(), id); err != nil {
		return db.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "equipment deleted"})
}

func (h *Handler) ListRooms(c echo.Context) error {
	items, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return db.HTTPError(err)
	}
	if items == nil {
		items = []*Room{}
	}
	return c.JSON(http.StatusOK, items)
}
