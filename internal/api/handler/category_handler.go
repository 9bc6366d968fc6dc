package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

type CategoryHandler struct {
	profiles ports.ProfileService
}

func NewCategoryHandler(profiles ports.ProfileService) *CategoryHandler {
	return &CategoryHandler{profiles: profiles}
}

// List returns every category.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  categoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.profiles.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(http.StatusOK, out)
}
