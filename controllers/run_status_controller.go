package controllers

import (
	"fmt"
	"net/http"

	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/services/job"
	"ormcheatsheet/utils"

	"github.com/gin-gonic/gin"
)

const defaultRunPageSize = 10

// RunStatusController handles run history API endpoints
type RunStatusController struct {
	history *job.RunHistory
}

// NewRunStatusController creates a new RunStatusController
func NewRunStatusController(history *job.RunHistory) *RunStatusController {
	return &RunStatusController{
		history: history,
	}
}

// runListParams are the optional pagination parameters of the run listing.
// Zero values mean unset.
type runListParams struct {
	Page     int `form:"page" validate:"gte=0"`
	PageSize int `form:"page_size" validate:"gte=0,lte=500"`
}

// RunListResponse is the unpaginated run listing.
type RunListResponse struct {
	Runs  []job.RunInfo `json:"runs"`
	Total int           `json:"total"`
}

// GetRunStatus retrieves one recorded query run
// @Summary Get run by ID
// @Description Get the status, row count and duration of a recorded query run
// @Tags Runs
// @Produce json
// @Param run_id path string true "Run ID"
// @Success 200 {object} RunSwaggerResponse "Recorded run"
// @Failure 404 {object} StandardErrorResponse "Unknown run"
// @Router /runs/{run_id} [get]
func (rsc *RunStatusController) GetRunStatus(c *gin.Context) {
	runID := c.Param("run_id")

	run, exists := rsc.history.GetRun(runID)
	if !exists {
		utils.NotFoundResponse(c, fmt.Errorf("run not found: %s", runID))
		return
	}

	logger.Debugf("Retrieved run %s: %s", runID, run.Status)
	utils.JSONResponse(c, http.StatusOK, run)
}

// GetAllRuns retrieves recorded runs with optional pagination
// @Summary List recent runs
// @Description Lists recent query runs, newest first. Paginated when 'page' or 'page_size' is given
// @Tags Runs
// @Produce json
// @Param page query int false "Page number (1-indexed, optional)" minimum(1)
// @Param page_size query int false "Number of items per page (optional, default: 10)" minimum(1) maximum(500)
// @Success 200 {object} RunListSwaggerResponse "Recorded runs"
// @Failure 400 {object} StandardErrorResponse "Invalid pagination parameters"
// @Router /runs [get]
func (rsc *RunStatusController) GetAllRuns(c *gin.Context) {
	var params runListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if params.Page == 0 && params.PageSize == 0 {
		runs := rsc.history.GetAllRuns()
		logger.Debugf("Retrieved %d runs (non-paginated)", len(runs))
		utils.JSONResponse(c, http.StatusOK, RunListResponse{Runs: runs, Total: len(runs)})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.PageSize == 0 {
		params.PageSize = defaultRunPageSize
	}

	result := rsc.history.GetAllRunsPaginated(params.Page, params.PageSize)
	logger.Debugf("Retrieved %d runs (page %d of %d, page_size=%d, total=%d)",
		len(result.Runs), result.Page, result.TotalPages, result.PageSize, result.Total)
	utils.JSONResponse(c, http.StatusOK, result)
}

// RegisterRunStatusRoutes registers HTTP endpoints for the run history.
func RegisterRunStatusRoutes(rg *gin.RouterGroup, history *job.RunHistory) {
	controller := NewRunStatusController(history)

	runs := rg.Group("/runs")
	{
		runs.GET("", controller.GetAllRuns)
		runs.GET("/:run_id", controller.GetRunStatus)
	}
}
