package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ormcheatsheet/services/catalog"
	"ormcheatsheet/services/tables"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueryService struct {
	rows   int
	runErr error
}

func (f *fakeQueryService) List() []catalog.Definition {
	return catalog.Definitions()
}

func (f *fakeQueryService) Describe(shape catalog.Shape) (*catalog.Query, error) {
	def, err := catalog.Lookup(shape)
	if err != nil {
		return nil, err
	}
	return &catalog.Query{Definition: def, SQL: "SELECT * FROM `policies`"}, nil
}

func (f *fakeQueryService) Run(_ context.Context, shape catalog.Shape) (*catalog.Result, error) {
	if f.runErr != nil {
		return nil, f.runErr
	}
	q, err := f.Describe(shape)
	if err != nil {
		return nil, err
	}
	res := &catalog.Result{Query: *q, Columns: []string{"policy_id"}}
	for i := 1; i <= f.rows; i++ {
		res.Records = append(res.Records, catalog.Record{"policy_id": fmt.Sprintf("p_%d", i)})
	}
	return res, nil
}

type fakeTableService struct{}

func (fakeTableService) List() []string { return []string{"policies", "claims"} }

func (fakeTableService) Describe(_ context.Context, name string) (*tables.TableView, error) {
	switch name {
	case "policies":
		return &tables.TableView{Name: name, DDL: "CREATE TABLE `policies` (...)", Columns: []string{"policy_id"}}, nil
	case "broken":
		return nil, errors.New("store unavailable")
	default:
		return nil, fmt.Errorf("%w: %q", tables.ErrUnknownTable, name)
	}
}

func newTestRouter(qs catalog.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetQueryService(qs)
	SetTableService(fakeTableService{})

	router := gin.New()
	api := router.Group("/api")
	RegisterQueryRoutes(api)
	RegisterTableRoutes(api)
	return router
}

func doGet(t *testing.T, router *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body
}

func TestListQueries(t *testing.T) {
	router := newTestRouter(&fakeQueryService{})
	w, body := doGet(t, router, "/api/queries")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, len(catalog.Shapes()), body["count"])
	queries := body["queries"].([]interface{})
	first := queries[0].(map[string]interface{})
	assert.Equal(t, "select_policies", first["name"])
	assert.Equal(t, "selecting", first["category"])
}

func TestDescribeQuery(t *testing.T) {
	router := newTestRouter(&fakeQueryService{})

	w, body := doGet(t, router, "/api/queries/filter_marine_policies/sql")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "filter_marine_policies", body["name"])
	assert.NotEmpty(t, body["sql"])
	assert.NotEmpty(t, body["expression"])

	w, body = doGet(t, router, "/api/queries/nope/sql")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, body["error"], "unknown query shape")
}

func TestRunQuery(t *testing.T) {
	tests := []struct {
		name      string
		svc       *fakeQueryService
		url       string
		wantCode  int
		wantRows  int
		wantTotal int
	}{
		{"all rows", &fakeQueryService{rows: 5}, "/api/queries/select_policies", http.StatusOK, 5, 5},
		{"limited", &fakeQueryService{rows: 5}, "/api/queries/select_policies?limit=2", http.StatusOK, 2, 5},
		{"limit zero means all", &fakeQueryService{rows: 3}, "/api/queries/select_policies?limit=0", http.StatusOK, 3, 3},
		{"limit above rows", &fakeQueryService{rows: 3}, "/api/queries/select_policies?limit=10", http.StatusOK, 3, 3},
		{"negative limit", &fakeQueryService{}, "/api/queries/select_policies?limit=-1", http.StatusBadRequest, 0, 0},
		{"limit too large", &fakeQueryService{}, "/api/queries/select_policies?limit=1001", http.StatusBadRequest, 0, 0},
		{"limit not a number", &fakeQueryService{}, "/api/queries/select_policies?limit=abc", http.StatusBadRequest, 0, 0},
		{"unknown shape", &fakeQueryService{}, "/api/queries/drop_everything", http.StatusNotFound, 0, 0},
		{"store failure", &fakeQueryService{runErr: errors.New("connection refused")}, "/api/queries/select_claims", http.StatusInternalServerError, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.svc)
			w, body := doGet(t, router, tt.url)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				assert.NotEmpty(t, body["error"])
				return
			}
			assert.Len(t, body["records"], tt.wantRows)
			assert.EqualValues(t, tt.wantTotal, body["total"])
			assert.NotEmpty(t, body["sql"])
		})
	}
}

func TestTableRoutes(t *testing.T) {
	router := newTestRouter(&fakeQueryService{})

	w, body := doGet(t, router, "/api/tables")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"policies", "claims"}, body["tables"])

	w, body = doGet(t, router, "/api/tables/policies")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "policies", body["name"])
	assert.Contains(t, body["ddl"], "CREATE TABLE")

	w, _ = doGet(t, router, "/api/tables/users")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doGet(t, router, "/api/tables/broken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
