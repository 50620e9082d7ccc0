package handler

import (
	"log/slog"
	"net/http"

	"herbwise/internal/delivery/http/response"
	"herbwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for plant catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPlants searches the catalog with optional q and category query params.
func (h *CatalogHandler) ListPlants(c echo.Context) error {
	plants, err := h.uc.SearchPlants(c.Request().Context(), c.QueryParam("q"), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plants, "Plants retrieved successfully")
}

// GetPlant returns a single catalog record.
func (h *CatalogHandler) GetPlant(c echo.Context) error {
	plant, err := h.uc.GetPlant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plant, "Plant retrieved successfully")
}
