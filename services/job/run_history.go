package job

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ormcheatsheet/pkg/logger"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// DefaultCapacity is the number of runs kept before the oldest are evicted.
const DefaultCapacity = 500

// RunInfo stores information about one catalog query run
type RunInfo struct {
	RunID      string     `json:"run_id"`
	Shape      string     `json:"shape"`
	SessionID  string     `json:"session_id,omitempty"`
	Status     string     `json:"status"`
	Rows       int        `json:"rows"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	DurationMS int64      `json:"duration_ms"`
	Error      string     `json:"error,omitempty"`
}

// RunHistory records recent query runs in start order
type RunHistory struct {
	runs     map[string]*RunInfo
	order    []string
	capacity int
	mu       sync.RWMutex
}

// NewRunHistory creates a history keeping at most capacity runs.
func NewRunHistory(capacity int) *RunHistory {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &RunHistory{
		runs:     make(map[string]*RunInfo),
		capacity: capacity,
	}
}

// Start records a new running query and returns its run ID
func (h *RunHistory) Start(shape string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	runID := uuid.NewString()
	h.runs[runID] = &RunInfo{
		RunID:     runID,
		Shape:     shape,
		Status:    StatusRunning,
		StartTime: time.Now(),
	}
	h.order = append(h.order, runID)

	for len(h.order) > h.capacity {
		evicted := h.order[0]
		h.order = h.order[1:]
		delete(h.runs, evicted)
	}

	logger.Debugf("Added run %s for %s to history", runID, shape)
	return runID
}

// SetSession attaches the store session that executed the run
func (h *RunHistory) SetSession(runID, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if run, ok := h.runs[runID]; ok {
		run.SessionID = sessionID
	}
}

// Complete marks a run as finished. A non-nil err marks it failed.
func (h *RunHistory) Complete(runID string, rows int, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	run, ok := h.runs[runID]
	if !ok {
		logger.Warnf("Run %s not found in history (evicted?)", runID)
		return
	}

	now := time.Now()
	run.EndTime = &now
	run.DurationMS = now.Sub(run.StartTime).Milliseconds()
	run.Rows = rows
	if err != nil {
		run.Status = StatusFailed
		run.Error = err.Error()
		return
	}
	run.Status = StatusCompleted
}

// GetRun returns a copy of one run
func (h *RunHistory) GetRun(runID string) (*RunInfo, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	run, ok := h.runs[runID]
	if !ok {
		return nil, false
	}
	cp := *run
	return &cp, true
}

// GetAllRuns returns every recorded run, newest first
func (h *RunHistory) GetAllRuns() []RunInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.newestFirst()
}

func (h *RunHistory) newestFirst() []RunInfo {
	out := make([]RunInfo, 0, len(h.order))
	for i := len(h.order) - 1; i >= 0; i-- {
		out = append(out, *h.runs[h.order[i]])
	}
	return out
}

// PaginatedRunsResult contains paginated runs data with metadata
type PaginatedRunsResult struct {
	Runs       []RunInfo `json:"runs"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// GetAllRunsPaginated returns one page of runs, newest first.
// Pages are 1-indexed; a page past the end yields an empty slice.
func (h *RunHistory) GetAllRunsPaginated(page, pageSize int) *PaginatedRunsResult {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	all := h.newestFirst()
	total := len(all)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= total {
		return &PaginatedRunsResult{
			Runs:       []RunInfo{},
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		}
	}
	if end > total {
		end = total
	}

	return &PaginatedRunsResult{
		Runs:       all[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
