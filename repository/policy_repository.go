package repository

import (
	"ormcheatsheet/models"

	"gorm.io/gorm"
)

// PolicyRepository provides data access operations for policy records.
type PolicyRepository interface {
	CreateInBatches(tx *gorm.DB, policies []models.Policy, batchSize int) error
	GetAll(tx *gorm.DB) ([]models.Policy, error)
	Count(tx *gorm.DB) (int64, error)
}

type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository instance.
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{
		db: db,
	}
}

func (r *policyRepository) CreateInBatches(tx *gorm.DB, policies []models.Policy, batchSize int) error {
	if len(policies) == 0 {
		return nil
	}
	return pick(tx, r.db).CreateInBatches(policies, batchSize).Error
}

func (r *policyRepository) GetAll(tx *gorm.DB) ([]models.Policy, error) {
	var policies []models.Policy
	if err := pick(tx, r.db).Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *policyRepository) Count(tx *gorm.DB) (int64, error) {
	var n int64
	if err := pick(tx, r.db).Model(&models.Policy{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
