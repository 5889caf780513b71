package models

// Policy represents the policies table.
// One row per insurance contract; premium is derived from the sampled exposure.
type Policy struct {
	PolicyID   string `gorm:"primaryKey;column:policy_id;type:varchar(32)" json:"policy_id"`
	ClassID    string `gorm:"column:class_id;type:varchar(32);not null" json:"class_id"`
	UWYear     int    `gorm:"column:uw_year;type:int;not null" json:"uw_year"`
	PremiumGBP int64  `gorm:"column:premium_gbp;type:bigint;not null" json:"premium_gbp"`
}

// TableName returns the database table name for Policy model.
func (Policy) TableName() string {
	return "policies"
}

// PolicyColumns lists the policies columns in declaration order.
var PolicyColumns = []string{"policy_id", "class_id", "uw_year", "premium_gbp"}
