package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/internal/application/usecase/data"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
)

// DataController handles data lifecycle endpoints: clear-all and export.
type DataController struct {
	clearUseCase  *data.ClearAllDataUseCase
	exportUseCase *data.ExportDataUseCase
}

// NewDataController creates a new data controller instance.
func NewDataController(
	clearUseCase *data.ClearAllDataUseCase,
	exportUseCase *data.ExportDataUseCase,
) *DataController {
	return &DataController{
		clearUseCase:  clearUseCase,
		exportUseCase: exportUseCase,
	}
}

// Clear handles POST /data/clear requests. The wipe is irreversible and
// suppresses future demo seeding.
func (c *DataController) Clear(ctx *gin.Context) {
	if err := c.clearUseCase.Execute(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear data",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /data/export requests. The report is served as a
// plain-text attachment.
func (c *DataController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), data.ExportDataInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export data",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(output.Content))
}
