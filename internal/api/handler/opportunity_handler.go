package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oportuna/career-assistant/internal/core/ports"
)

type OpportunityHandler struct {
	handoff ports.HandoffService
}

func NewOpportunityHandler(handoff ports.HandoffService) *OpportunityHandler {
	return &OpportunityHandler{handoff: handoff}
}

// Oportunidades returns the opportunities stored for a user, flattened
// across categories. Users the pipeline never ran for get an empty list.
//
// @Summary      Retrieve stored opportunities
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        body  body      opportunitiesRequest  true  "User identity"
// @Success      200   {object}  opportunitiesResponse
// @Router       /oportunidades [post]
func (h *OpportunityHandler) Oportunidades(c echo.Context) error {
	var req opportunitiesRequest
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return c.JSON(http.StatusOK, opportunitiesResponse{Oportunidades: []opportunityItem{}})
	}

	items, err := h.handoff.Fetch(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	out := make([]opportunityItem, 0, len(items))
	for _, o := range items {
		out = append(out, opportunityItem{Titulo: o.Title, Descricao: o.Description, Link: o.Link})
	}
	return c.JSON(http.StatusOK, opportunitiesResponse{Oportunidades: out})
}
