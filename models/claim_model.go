package models

// Claim represents the claims table.
// Many claims reference one policy through PolicyID; the constraint is
// added by bootstrap once both tables exist.
type Claim struct {
	ClaimID  string `gorm:"primaryKey;column:claim_id;type:varchar(32)" json:"claim_id"`
	Country  string `gorm:"column:country;type:varchar(64);not null" json:"country"`
	ClaimGBP int64  `gorm:"column:claim_gbp;type:bigint;not null" json:"claim_gbp"`
	PolicyID string `gorm:"column:policy_id;type:varchar(32);not null" json:"policy_id"`
}

// TableName returns the database table name for Claim model.
func (Claim) TableName() string {
	return "claims"
}

// ClaimColumns lists the claims columns in declaration order.
var ClaimColumns = []string{"claim_id", "country", "claim_gbp", "policy_id"}
