package catalog

import (
	"fmt"

	"ormcheatsheet/models"
	"ormcheatsheet/services/dataset"

	"gorm.io/gorm"
)

// Definition describes one catalog entry and builds its query.
type Definition struct {
	Shape      Shape    `json:"name"`
	Category   Category `json:"category"`
	Title      string   `json:"title"`
	Expression string   `json:"expression"`

	build func(*gorm.DB) *gorm.DB
}

// Build applies the query to db without executing it.
func (d Definition) Build(db *gorm.DB) *gorm.DB {
	return d.build(db)
}

const (
	policyColumnsQualified = "policies.policy_id, policies.class_id, policies.uw_year, policies.premium_gbp"
	policyClaimColumns     = policyColumnsQualified + ", claims.claim_id, claims.country, claims.claim_gbp"
	joinClaims             = "JOIN claims ON claims.policy_id = policies.policy_id"
	leftJoinClaims         = "LEFT JOIN claims ON claims.policy_id = policies.policy_id"
)

func policies(db *gorm.DB) *gorm.DB { return db.Model(&models.Policy{}) }

func claims(db *gorm.DB) *gorm.DB { return db.Model(&models.Claim{}) }

var definitions = [shapeCount]Definition{
	SelectPolicies: {
		Category:   Selecting,
		Title:      "Select all policies",
		Expression: `db.Model(&models.Policy{}).Find(&rows)`,
		build:      policies,
	},
	SelectPoliciesOrderByPremium: {
		Category:   Selecting,
		Title:      "Select all policies ordered by premium, largest first",
		Expression: `db.Model(&models.Policy{}).Order("premium_gbp DESC").Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Order("premium_gbp DESC")
		},
	},
	SelectPolicyID: {
		Category:   Selecting,
		Title:      "Select the policy_id column",
		Expression: `db.Model(&models.Policy{}).Select("policy_id").Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Select("policy_id")
		},
	},
	SelectPolicyIDPremium: {
		Category:   Selecting,
		Title:      "Select the policy_id and premium_gbp columns",
		Expression: `db.Model(&models.Policy{}).Select("policy_id", "premium_gbp").Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Select("policy_id", "premium_gbp")
		},
	},
	SelectClaims: {
		Category:   Selecting,
		Title:      "Select all claims",
		Expression: `db.Model(&models.Claim{}).Find(&rows)`,
		build:      claims,
	},
	SelectClaimsOrderByAmount: {
		Category:   Selecting,
		Title:      "Select all claims ordered by amount, largest first",
		Expression: `db.Model(&models.Claim{}).Order("claim_gbp DESC").Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).Order("claim_gbp DESC")
		},
	},
	SelectClaimID: {
		Category:   Selecting,
		Title:      "Select the claim_id column",
		Expression: `db.Model(&models.Claim{}).Select("claim_id").Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).Select("claim_id")
		},
	},
	SelectClaimIDAmount: {
		Category:   Selecting,
		Title:      "Select the claim_id and claim_gbp columns",
		Expression: `db.Model(&models.Claim{}).Select("claim_id", "claim_gbp").Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).Select("claim_id", "claim_gbp")
		},
	},
	FilterMarinePolicies: {
		Category:   Filtering,
		Title:      "Marine policies",
		Expression: `db.Where(&models.Policy{ClassID: "Marine"}).Find(&policies)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Where(&models.Policy{ClassID: "Marine"})
		},
	},
	FilterMarine2021Policies: {
		Category:   Filtering,
		Title:      "Marine policies underwritten in 2021",
		Expression: `db.Where(&models.Policy{ClassID: "Marine", UWYear: 2021}).Find(&policies)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Where(&models.Policy{ClassID: "Marine", UWYear: 2021})
		},
	},
	FilterPolicies2021To2022: {
		Category:   Filtering,
		Title:      "Policies underwritten in 2021 or 2022",
		Expression: `db.Where("uw_year IN ?", []int{2021, 2022}).Find(&policies)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Where("uw_year IN ?", []int{2021, 2022})
		},
	},
	FilterPremium50kTo100k: {
		Category:   Filtering,
		Title:      "Policies with premium between 50k and 100k",
		Expression: `db.Where("premium_gbp BETWEEN ? AND ?", 50000, 100000).Find(&policies)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Where("premium_gbp BETWEEN ? AND ?", 50000, 100000)
		},
	},
	FilterClaimsOver300k: {
		Category:   Filtering,
		Title:      "Claims over 300k",
		Expression: `db.Where("claim_gbp > ?", 300000).Find(&claims)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).Where("claim_gbp > ?", dataset.LargeLossThreshold)
		},
	},
	FilterClaimsOver300kMexico: {
		Category:   Filtering,
		Title:      "Claims over 300k in Mexico",
		Expression: `db.Where("claim_gbp > ?", 300000).Where(&models.Claim{Country: "Mexico"}).Find(&claims)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).Where("claim_gbp > ?", dataset.LargeLossThreshold).Where(&models.Claim{Country: "Mexico"})
		},
	},
	FilterClaimsCountryLikeU: {
		Category:   Filtering,
		Title:      "Claims in countries starting with U",
		Expression: `db.Where("country LIKE ?", "U%").Find(&claims)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).Where("country LIKE ?", "U%")
		},
	},
	JoinPoliciesClaimsInner: {
		Category: Joining,
		Title:    "Policies inner joined with their claims",
		Expression: `db.Model(&models.Policy{}).
	Select("policies.policy_id, policies.class_id, policies.uw_year, policies.premium_gbp, " +
		"claims.claim_id, claims.country, claims.claim_gbp").
	Joins("JOIN claims ON claims.policy_id = policies.policy_id").
	Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Select(policyClaimColumns).Joins(joinClaims)
		},
	},
	JoinPoliciesClaimsLeftOuter: {
		Category: Joining,
		Title:    "Policies left outer joined with their claims",
		Expression: `db.Model(&models.Policy{}).
	Select("policies.policy_id, policies.class_id, policies.uw_year, policies.premium_gbp, " +
		"claims.claim_id, claims.country, claims.claim_gbp").
	Joins("LEFT JOIN claims ON claims.policy_id = policies.policy_id").
	Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Select(policyClaimColumns).Joins(leftJoinClaims)
		},
	},
	JoinPoliciesWithoutClaims: {
		Category: Joining,
		Title:    "Policies without any claim",
		Expression: `db.Model(&models.Policy{}).
	Select("policies.policy_id, policies.class_id, policies.uw_year, policies.premium_gbp").
	Joins("LEFT JOIN claims ON claims.policy_id = policies.policy_id").
	Where("claims.claim_id IS NULL").
	Find(&policies)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).Select(policyColumnsQualified).Joins(leftJoinClaims).Where("claims.claim_id IS NULL")
		},
	},
	GroupPremiumByClass: {
		Category: Grouping,
		Title:    "Total premium per class",
		Expression: `db.Model(&models.Policy{}).
	Select("class_id, SUM(premium_gbp) AS sum_premium").
	Group("class_id").
	Order("class_id").
	Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).
				Select("class_id, SUM(premium_gbp) AS sum_premium").
				Group("class_id").
				Order("class_id")
		},
	},
	GroupPremiumByClassYear: {
		Category: Grouping,
		Title:    "Premium statistics per class and underwriting year",
		Expression: `db.Model(&models.Policy{}).
	Select("class_id, uw_year, SUM(premium_gbp) AS sum_premium, COUNT(policy_id) AS policy_count, " +
		"AVG(premium_gbp) AS avg_premium, MAX(premium_gbp) AS max_premium, MIN(premium_gbp) AS min_premium").
	Group("class_id, uw_year").
	Order("class_id, uw_year").
	Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).
				Select("class_id, uw_year, SUM(premium_gbp) AS sum_premium, COUNT(policy_id) AS policy_count, " +
					"AVG(premium_gbp) AS avg_premium, MAX(premium_gbp) AS max_premium, MIN(premium_gbp) AS min_premium").
				Group("class_id, uw_year").
				Order("class_id, uw_year")
		},
	},
	GroupPremiumClaimsByClassYear: {
		Category: Grouping,
		Title:    "Premium and claims per class and underwriting year",
		Expression: `db.Model(&models.Policy{}).
	Select("policies.class_id, policies.uw_year, SUM(policies.premium_gbp) AS sum_premium, " +
		"SUM(claims.claim_gbp) AS sum_claims, COUNT(policies.policy_id) AS policy_count, " +
		"COUNT(claims.claim_id) AS count_claims").
	Joins("LEFT JOIN claims ON claims.policy_id = policies.policy_id").
	Group("policies.class_id, policies.uw_year").
	Order("policies.class_id, policies.uw_year").
	Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return policies(db).
				Select("policies.class_id, policies.uw_year, SUM(policies.premium_gbp) AS sum_premium, " +
					"SUM(claims.claim_gbp) AS sum_claims, COUNT(policies.policy_id) AS policy_count, " +
					"COUNT(claims.claim_id) AS count_claims").
				Joins(leftJoinClaims).
				Group("policies.class_id, policies.uw_year").
				Order("policies.class_id, policies.uw_year")
		},
	},
	GroupClaimsByCountry: {
		Category: Grouping,
		Title:    "Claim count and total per country",
		Expression: `db.Model(&models.Claim{}).
	Select("country, COUNT(claim_id) AS count_claims, SUM(claim_gbp) AS sum_claims").
	Group("country").
	Order("country").
	Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).
				Select("country, COUNT(claim_id) AS count_claims, SUM(claim_gbp) AS sum_claims").
				Group("country").
				Order("country")
		},
	},
	GroupPoliciesWithMultipleClaims: {
		Category: Grouping,
		Title:    "Policies with more than one claim",
		Expression: `db.Model(&models.Claim{}).
	Select("policy_id, COUNT(claim_id) AS count_claims").
	Group("policy_id").
	Having("COUNT(claim_id) > ?", 1).
	Find(&rows)`,
		build: func(db *gorm.DB) *gorm.DB {
			return claims(db).
				Select("policy_id, COUNT(claim_id) AS count_claims").
				Group("policy_id").
				Having("COUNT(claim_id) > ?", 1)
		},
	},
}

func init() {
	for i := range definitions {
		definitions[i].Shape = Shape(i)
	}
}

// Lookup returns the definition of shape.
func Lookup(shape Shape) (Definition, error) {
	if !shape.Valid() {
		return Definition{}, fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
	}
	return definitions[shape], nil
}

// Definitions returns every definition in display order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions[:])
	return out
}

// ByCategory returns the definitions in category, in display order.
func ByCategory(category Category) []Definition {
	var out []Definition
	for _, d := range definitions {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
