package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/internal/application/usecase/analytics"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles aggregation endpoints. All figures are derived
// from the ledger on request; nothing is cached.
type AnalyticsController struct {
	summaryUseCase   *analytics.GetSummaryUseCase
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase
	dailyUseCase     *analytics.GetDailySpendingUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetSummaryUseCase,
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase,
	dailyUseCase *analytics.GetDailySpendingUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
		dailyUseCase:     dailyUseCase,
	}
}

// parsePeriod reads the optional year and month query parameters. Both must
// be present together; ok is false after an error response has been written.
func parsePeriod(ctx *gin.Context, required bool) (int, time.Month, bool) {
	yearStr := ctx.Query("year")
	monthStr := ctx.Query("month")

	if yearStr == "" && monthStr == "" {
		if required {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year and month parameters are required",
			})
			return 0, 0, false
		}
		return 0, 0, true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
		})
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month parameter. Use 1-12",
		})
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// Summary handles GET /analytics/summary requests. Without year and month
// the totals cover the full ledger.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	year, month, ok := parsePeriod(ctx, false)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// CategoryBreakdown handles GET /analytics/categories requests.
func (c *AnalyticsController) CategoryBreakdown(ctx *gin.Context) {
	year, month, ok := parsePeriod(ctx, false)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), analytics.GetCategoryBreakdownInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// DailySpending handles GET /analytics/daily requests. Year and month are
// required because the series is month-scoped.
func (c *AnalyticsController) DailySpending(ctx *gin.Context) {
	year, month, ok := parsePeriod(ctx, true)
	if !ok {
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), analytics.GetDailySpendingInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute daily spending",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySpendingResponse(output))
}
