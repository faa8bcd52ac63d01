package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asifshaikgit/workforce-sub002/internal/usecase/consolidation"
)

type ConsolidationHandler struct{ uc *consolidation.Consolidator }

func NewConsolidationHandler(uc *consolidation.Consolidator) *ConsolidationHandler {
	return &ConsolidationHandler{uc: uc}
}

// Preview builds candidate line items for a placement's unbilled approved
// hours without persisting anything; the result feeds the create-ledger flow.
func (h *ConsolidationHandler) Preview(c echo.Context) error {
	placementID := c.Param("placement_id")
	from, okFrom := parseDate(c.QueryParam("from"))
	to, okTo := parseDate(c.QueryParam("to"))
	if placementID == "" || !okFrom || !okTo {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "placement_id path param and from/to date query params (YYYY-MM-DD) are required",
		})
	}
	candidates, err := h.uc.BuildForPlacement(c.Request().Context(), placementID, from, to)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"candidates": candidates})
}
