package handlers

import (
	"net/http"

	"smartcloth/internal/models"
	"smartcloth/internal/service"

	"github.com/gin-gonic/gin"
)

// MealsResponse lists saved meals with their totals.
type MealsResponse struct {
	Count  int           `json:"count"`
	Meals  []models.Meal `json:"meals"`
	Totals models.Diary  `json:"totals"`
}

// @Summary      List saved meals
// @Description  Filter by save time (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). A date-only 'to' covers that whole day.
// @Tags         diary
// @Produce      json
// @Param        from  query     string  false  "Start of range"  example(2025-08-01)
// @Param        to    query     string  false  "End of range"    example(2025-08-31)
// @Success      200   {object}  MealsResponse
// @Failure      400   {object}  smartcloth.ErrorResponse
// @Failure      401   {object}  smartcloth.ErrorResponse
// @Failure      500   {object}  smartcloth.ErrorResponse
// @Router       /api/v1/meals [get]
// @Security     BearerAuth
func (h *Handler) getMeals(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	f := service.MealFilter{From: from, To: to}

	meals, err := h.services.Diary.List(ctx, f)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load meals", "meals_list_failed", err)
		return
	}
	totals, err := h.services.Diary.Totals(ctx, f)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load meals", "meals_totals_failed", err)
		return
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	c.JSON(http.StatusOK, MealsResponse{Count: len(meals), Meals: meals, Totals: totals})
}
