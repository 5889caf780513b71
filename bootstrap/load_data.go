package bootstrap

import (
	"context"
	"fmt"

	"ormcheatsheet/models"
	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/repository"
	"ormcheatsheet/services/dataset"

	"gorm.io/gorm"
)

// insertBatchSize bounds the number of rows per INSERT statement.
const insertBatchSize = 50

// LoadData creates the policies and claims tables and inserts the dataset in
// one transaction. The tables must not exist yet.
func LoadData(ctx context.Context, db *gorm.DB, ds *dataset.Dataset) error {
	logger.Infof("Starting bootstrap data loading (seed %d)...", ds.Seed)

	db = db.WithContext(ctx)
	if err := createSchema(db); err != nil {
		return err
	}

	baseRepo := repository.NewBaseRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	claimRepo := repository.NewClaimRepository(db)

	tx := baseRepo.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin load transaction: %w", tx.Error)
	}
	if err := policyRepo.CreateInBatches(tx, ds.Policies, insertBatchSize); err != nil {
		tx.Rollback()
		logger.Errorf("Failed to insert policies: %v", err)
		return fmt.Errorf("failed to insert policies: %w", err)
	}
	if err := claimRepo.CreateInBatches(tx, ds.Claims, insertBatchSize); err != nil {
		tx.Rollback()
		logger.Errorf("Failed to insert claims: %v", err)
		return fmt.Errorf("failed to insert claims: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit load transaction: %w", err)
	}

	if err := verifyCount("policies", len(ds.Policies), policyRepo.Count); err != nil {
		return err
	}
	if err := verifyCount("claims", len(ds.Claims), claimRepo.Count); err != nil {
		return err
	}

	logger.Infof("Bootstrap data loading completed: %d policies, %d claims", len(ds.Policies), len(ds.Claims))
	return nil
}

// claimPolicyFK ties claims.policy_id to the policies primary key.
const claimPolicyFK = "ALTER TABLE `claims` ADD CONSTRAINT `fk_claims_policy` " +
	"FOREIGN KEY (`policy_id`) REFERENCES `policies` (`policy_id`)"

func createSchema(db *gorm.DB) error {
	if err := db.Migrator().CreateTable(&models.Policy{}, &models.Claim{}); err != nil {
		logger.Errorf("Failed to create schema: %v", err)
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := db.Exec(claimPolicyFK).Error; err != nil {
		logger.Errorf("Failed to add claims foreign key: %v", err)
		return fmt.Errorf("failed to add claims foreign key: %w", err)
	}
	return nil
}

func verifyCount(table string, want int, count func(*gorm.DB) (int64, error)) error {
	got, err := count(nil)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if got != int64(want) {
		return fmt.Errorf("loaded %d rows into %s, expected %d", got, table, want)
	}
	logger.Infof("Loaded %d %s", got, table)
	return nil
}
