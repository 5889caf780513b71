package repository

import (
	"ormcheatsheet/models"

	"gorm.io/gorm"
)

// ClaimRepository provides data access operations for claim records.
type ClaimRepository interface {
	CreateInBatches(tx *gorm.DB, claims []models.Claim, batchSize int) error
	GetAll(tx *gorm.DB) ([]models.Claim, error)
	Count(tx *gorm.DB) (int64, error)
}

type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository instance.
func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{
		db: db,
	}
}

func (r *claimRepository) CreateInBatches(tx *gorm.DB, claims []models.Claim, batchSize int) error {
	if len(claims) == 0 {
		return nil
	}
	// Claims carry no Policy pointer on insert; skip association upserts.
	return pick(tx, r.db).Omit("Policy").CreateInBatches(claims, batchSize).Error
}

func (r *claimRepository) GetAll(tx *gorm.DB) ([]models.Claim, error) {
	var claims []models.Claim
	if err := pick(tx, r.db).Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) Count(tx *gorm.DB) (int64, error) {
	var n int64
	if err := pick(tx, r.db).Model(&models.Claim{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
