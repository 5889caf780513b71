package tables

import (
	"context"
	"errors"
	"fmt"

	"ormcheatsheet/models"
	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/repository"
	"ormcheatsheet/services/store"
)

// ErrUnknownTable is returned for a table name outside the schema.
var ErrUnknownTable = errors.New("unknown table")

// TableView is the design view of one table: its DDL and current rows.
type TableView struct {
	Name    string                   `json:"name"`
	DDL     string                   `json:"ddl"`
	Columns []string                 `json:"columns"`
	Records []map[string]interface{} `json:"records"`
}

// Service exposes the schema and contents of the dataset tables.
type Service interface {
	List() []string
	Describe(ctx context.Context, name string) (*TableView, error)
}

type tableService struct {
	store      *store.Store
	policyRepo repository.PolicyRepository
	claimRepo  repository.ClaimRepository
}

// NewTableService creates a table design service backed by st.
func NewTableService(st *store.Store) Service {
	return &tableService{
		store:      st,
		policyRepo: repository.NewPolicyRepository(st.DB),
		claimRepo:  repository.NewClaimRepository(st.DB),
	}
}

func (s *tableService) List() []string {
	return []string{models.Policy{}.TableName(), models.Claim{}.TableName()}
}

func (s *tableService) Describe(ctx context.Context, name string) (*TableView, error) {
	var view *TableView
	err := s.store.WithSession(ctx, func(sess *store.Session) error {
		var err error
		switch name {
		case models.Policy{}.TableName():
			view, err = s.describePolicies(sess)
		case models.Claim{}.TableName():
			view, err = s.describeClaims(sess)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownTable, name)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	ddl, err := s.store.ShowCreateTable(ctx, name)
	if err != nil {
		logger.Errorf("Failed to read definition of %s: %v", name, err)
		return nil, fmt.Errorf("failed to read definition of %s: %w", name, err)
	}
	view.DDL = ddl
	return view, nil
}

func (s *tableService) describePolicies(sess *store.Session) (*TableView, error) {
	policies, err := s.policyRepo.GetAll(sess.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to read policies: %w", err)
	}
	records := make([]map[string]interface{}, 0, len(policies))
	for _, p := range policies {
		records = append(records, map[string]interface{}{
			"policy_id":   p.PolicyID,
			"class_id":    p.ClassID,
			"uw_year":     int64(p.UWYear),
			"premium_gbp": p.PremiumGBP,
		})
	}
	return &TableView{Name: models.Policy{}.TableName(), Columns: models.PolicyColumns, Records: records}, nil
}

func (s *tableService) describeClaims(sess *store.Session) (*TableView, error) {
	claims, err := s.claimRepo.GetAll(sess.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to read claims: %w", err)
	}
	records := make([]map[string]interface{}, 0, len(claims))
	for _, c := range claims {
		records = append(records, map[string]interface{}{
			"claim_id":  c.ClaimID,
			"country":   c.Country,
			"claim_gbp": c.ClaimGBP,
			"policy_id": c.PolicyID,
		})
	}
	return &TableView{Name: models.Claim{}.TableName(), Columns: models.ClaimColumns, Records: records}, nil
}
