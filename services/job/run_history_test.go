package job

import (
	"errors"
	"fmt"
	"testing"
)

// TestGetAllRunsPaginated_Empty tests pagination with no runs
func TestGetAllRunsPaginated_Empty(t *testing.T) {
	h := NewRunHistory(10)

	result := h.GetAllRunsPaginated(1, 10)

	if result.Total != 0 {
		t.Errorf("Expected total 0, got %d", result.Total)
	}
	if len(result.Runs) != 0 {
		t.Errorf("Expected empty runs array, got %d runs", len(result.Runs))
	}
	if result.TotalPages != 0 {
		t.Errorf("Expected totalPages 0, got %d", result.TotalPages)
	}
}

// TestGetAllRunsPaginated_MultiplePages tests page boundaries and ordering
func TestGetAllRunsPaginated_MultiplePages(t *testing.T) {
	h := NewRunHistory(100)
	for i := 1; i <= 25; i++ {
		h.Start(fmt.Sprintf("shape_%d", i))
	}

	first := h.GetAllRunsPaginated(1, 10)
	if len(first.Runs) != 10 || first.TotalPages != 3 {
		t.Fatalf("Expected 10 runs over 3 pages, got %d runs over %d pages", len(first.Runs), first.TotalPages)
	}
	if first.Runs[0].Shape != "shape_25" {
		t.Errorf("Expected newest run first, got %s", first.Runs[0].Shape)
	}

	last := h.GetAllRunsPaginated(3, 10)
	if len(last.Runs) != 5 {
		t.Errorf("Expected 5 runs on last page, got %d", len(last.Runs))
	}
	if last.Runs[4].Shape != "shape_1" {
		t.Errorf("Expected oldest run last, got %s", last.Runs[4].Shape)
	}

	beyond := h.GetAllRunsPaginated(9, 10)
	if len(beyond.Runs) != 0 || beyond.Total != 25 {
		t.Errorf("Expected empty page with total 25, got %d runs, total %d", len(beyond.Runs), beyond.Total)
	}
}

// TestGetAllRunsPaginated_InvalidParams tests defaults for invalid page values
func TestGetAllRunsPaginated_InvalidParams(t *testing.T) {
	h := NewRunHistory(10)
	h.Start("select_policies")

	result := h.GetAllRunsPaginated(0, -5)
	if result.Page != 1 || result.PageSize != 10 {
		t.Errorf("Expected page 1 size 10, got page %d size %d", result.Page, result.PageSize)
	}
}

// TestComplete tests status transitions
func TestComplete(t *testing.T) {
	h := NewRunHistory(10)

	ok := h.Start("select_policies")
	h.SetSession(ok, "session-1")
	h.Complete(ok, 100, nil)

	bad := h.Start("select_claims")
	h.Complete(bad, 0, errors.New("connection refused"))

	run, found := h.GetRun(ok)
	if !found {
		t.Fatalf("Expected run %s", ok)
	}
	if run.Status != StatusCompleted || run.Rows != 100 || run.SessionID != "session-1" || run.EndTime == nil {
		t.Errorf("Unexpected completed run: %+v", run)
	}

	run, _ = h.GetRun(bad)
	if run.Status != StatusFailed || run.Error != "connection refused" {
		t.Errorf("Unexpected failed run: %+v", run)
	}

	// Unknown IDs are ignored.
	h.Complete("missing", 1, nil)
	if _, found := h.GetRun("missing"); found {
		t.Errorf("Expected missing run to stay absent")
	}
}

// TestCapacityEvictsOldest tests that the history stays bounded
func TestCapacityEvictsOldest(t *testing.T) {
	h := NewRunHistory(3)
	first := h.Start("a")
	h.Start("b")
	h.Start("c")
	h.Start("d")

	if _, found := h.GetRun(first); found {
		t.Errorf("Expected oldest run to be evicted")
	}
	all := h.GetAllRuns()
	if len(all) != 3 || all[0].Shape != "d" || all[2].Shape != "b" {
		t.Errorf("Unexpected runs after eviction: %+v", all)
	}
}
