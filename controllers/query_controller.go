package controllers

import (
	"errors"
	"net/http"

	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/services/catalog"
	"ormcheatsheet/utils"

	"github.com/gin-gonic/gin"
)

var querySrv catalog.Service

// SetQueryService initializes the query catalog service instance.
func SetQueryService(srv catalog.Service) {
	querySrv = srv
}

// runQueryParams are the query-string parameters of a catalog run.
type runQueryParams struct {
	Limit int `form:"limit" validate:"gte=0,lte=1000"`
}

// QueryRunResponse is a catalog result, possibly truncated to the requested limit.
type QueryRunResponse struct {
	*catalog.Result
	Total int `json:"total"`
}

// listQueries returns every catalog entry
// @Summary List query shapes
// @Description Lists every query in the cheatsheet with its category, title and ORM expression
// @Tags Queries
// @Produce json
// @Success 200 {object} QueryListResponse "Catalog entries in display order"
// @Router /queries [get]
func listQueries(c *gin.Context) {
	defs := querySrv.List()
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"count":   len(defs),
		"queries": defs,
	})
}

// describeQuery returns the expression and rendered SQL of one shape
// @Summary Show query SQL
// @Description Returns the ORM expression of a query shape and the SQL statement it renders to, without running it
// @Tags Queries
// @Produce json
// @Param shape path string true "Query shape name" example(filter_marine_policies)
// @Success 200 {object} QueryDescribeResponse "Expression and SQL"
// @Failure 404 {object} StandardErrorResponse "Unknown query shape"
// @Router /queries/{shape}/sql [get]
func describeQuery(c *gin.Context) {
	shape, err := catalog.ParseShape(c.Param("shape"))
	if err != nil {
		utils.NotFoundResponse(c, err)
		return
	}

	query, err := querySrv.Describe(shape)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, query)
}

// runQuery runs one shape against the in-memory store
// @Summary Run query
// @Description Runs a query shape and returns its SQL together with the resulting rows
// @Tags Queries
// @Produce json
// @Param shape path string true "Query shape name" example(join_policies_claims_inner)
// @Param limit query int false "Maximum number of rows to return, 0 for all" minimum(0) maximum(1000)
// @Success 200 {object} QueryRunSwaggerResponse "Query result"
// @Failure 400 {object} StandardErrorResponse "Invalid request parameters"
// @Failure 404 {object} StandardErrorResponse "Unknown query shape"
// @Failure 500 {object} StandardErrorResponse "Query execution failed"
// @Router /queries/{shape} [get]
func runQuery(c *gin.Context) {
	shape, err := catalog.ParseShape(c.Param("shape"))
	if err != nil {
		utils.NotFoundResponse(c, err)
		return
	}

	var params runQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := querySrv.Run(c.Request.Context(), shape)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	total := len(result.Records)
	if params.Limit > 0 && total > params.Limit {
		result.Records = result.Records[:params.Limit]
	}
	logger.Debugf("Returning %d of %d rows for %s", len(result.Records), total, shape)
	utils.JSONResponse(c, http.StatusOK, QueryRunResponse{Result: result, Total: total})
}

func respondQueryError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrUnknownShape) {
		utils.NotFoundResponse(c, err)
		return
	}
	utils.InternalErrorResponse(c, err)
}

// RegisterQueryRoutes registers HTTP endpoints for the query catalog.
func RegisterQueryRoutes(rg *gin.RouterGroup) {
	queries := rg.Group("/queries")
	{
		queries.GET("", listQueries)
		queries.GET("/:shape", runQuery)
		queries.GET("/:shape/sql", describeQuery)
	}
}
