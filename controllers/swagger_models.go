package controllers

// Response models for Swagger documentation

// StandardErrorResponse represents the error body returned by every endpoint
type StandardErrorResponse struct {
	Error string `json:"error" example:"unknown query shape: \"drop_everything\""`
}

// QueryDefinitionResponse represents one catalog entry
type QueryDefinitionResponse struct {
	Name       string `json:"name" example:"filter_marine_policies"`
	Category   string `json:"category" example:"filtering"`
	Title      string `json:"title" example:"Marine policies"`
	Expression string `json:"expression" example:"db.Where(&models.Policy{ClassID: \"Marine\"}).Find(&policies)"`
}

// QueryListResponse represents the catalog listing
type QueryListResponse struct {
	Count   int                       `json:"count" example:"23"`
	Queries []QueryDefinitionResponse `json:"queries"`
}

// QueryDescribeResponse represents a catalog entry with its rendered SQL
type QueryDescribeResponse struct {
	QueryDefinitionResponse
	SQL string `json:"sql" example:"SELECT * FROM policies WHERE class_id = 'Marine'"`
}

// QueryRunSwaggerResponse represents the result of running a query
type QueryRunSwaggerResponse struct {
	QueryDescribeResponse
	Columns []string                 `json:"columns" example:"policy_id,class_id,uw_year,premium_gbp"`
	Records []map[string]interface{} `json:"records"`
	Total   int                      `json:"total" example:"34"`
}

// TableListResponse represents the list of dataset tables
type TableListResponse struct {
	Tables []string `json:"tables" example:"policies,claims"`
}

// TableViewSwaggerResponse represents the design view of a table
type TableViewSwaggerResponse struct {
	Name    string                   `json:"name" example:"claims"`
	DDL     string                   `json:"ddl" example:"CREATE TABLE claims (...)"`
	Columns []string                 `json:"columns" example:"claim_id,country,claim_gbp,policy_id"`
	Records []map[string]interface{} `json:"records"`
}

// RunSwaggerResponse represents one recorded query run
type RunSwaggerResponse struct {
	RunID      string `json:"run_id" example:"5f0c6a1e-3b7d-4c1a-9a58-2d1f4e6b8c90"`
	Shape      string `json:"shape" example:"join_policies_claims_inner"`
	SessionID  string `json:"session_id,omitempty" example:"a41e9c3d-7f20-4b8e-b1d6-0c5a2e9f7b13"`
	Status     string `json:"status" example:"completed"`
	Rows       int    `json:"rows" example:"30"`
	StartTime  string `json:"start_time" example:"2024-01-01T12:00:00Z"`
	EndTime    string `json:"end_time,omitempty" example:"2024-01-01T12:00:00.004Z"`
	DurationMS int64  `json:"duration_ms" example:"4"`
	Error      string `json:"error,omitempty"`
}

// RunListSwaggerResponse represents the run listing; the page fields are set when paginated
type RunListSwaggerResponse struct {
	Runs       []RunSwaggerResponse `json:"runs"`
	Total      int                  `json:"total" example:"3"`
	Page       int                  `json:"page,omitempty" example:"1"`
	PageSize   int                  `json:"page_size,omitempty" example:"10"`
	TotalPages int                  `json:"total_pages,omitempty" example:"1"`
}
