package controllers

import (
	"errors"
	"net/http"

	"ormcheatsheet/services/tables"
	"ormcheatsheet/utils"

	"github.com/gin-gonic/gin"
)

var tableSrv tables.Service

// SetTableService initializes the table design service instance.
func SetTableService(srv tables.Service) {
	tableSrv = srv
}

// listTables returns the dataset table names
// @Summary List tables
// @Description Lists the tables of the sample dataset
// @Tags Tables
// @Produce json
// @Success 200 {object} TableListResponse "Table names"
// @Router /tables [get]
func listTables(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"tables": tableSrv.List(),
	})
}

// describeTable returns the DDL and rows of one table
// @Summary Describe table
// @Description Returns the CREATE TABLE statement, columns and rows of a dataset table
// @Tags Tables
// @Produce json
// @Param table path string true "Table name" example(policies)
// @Success 200 {object} TableViewSwaggerResponse "Table design view"
// @Failure 404 {object} StandardErrorResponse "Unknown table"
// @Failure 500 {object} StandardErrorResponse "Store failure"
// @Router /tables/{table} [get]
func describeTable(c *gin.Context) {
	view, err := tableSrv.Describe(c.Request.Context(), c.Param("table"))
	if err != nil {
		if errors.Is(err, tables.ErrUnknownTable) {
			utils.NotFoundResponse(c, err)
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

// RegisterTableRoutes registers HTTP endpoints for the table design view.
func RegisterTableRoutes(rg *gin.RouterGroup) {
	t := rg.Group("/tables")
	{
		t.GET("", listTables)
		t.GET("/:table", describeTable)
	}
}
