package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownShape is returned for a shape name or value outside the catalog.
var ErrUnknownShape = errors.New("unknown query shape")

// Shape identifies one read-only query in the catalog.
type Shape int

// Catalog shapes, in display order.
const (
	SelectPolicies Shape = iota
	SelectPoliciesOrderByPremium
	SelectPolicyID
	SelectPolicyIDPremium
	SelectClaims
	SelectClaimsOrderByAmount
	SelectClaimID
	SelectClaimIDAmount
	FilterMarinePolicies
	FilterMarine2021Policies
	FilterPolicies2021To2022
	FilterPremium50kTo100k
	FilterClaimsOver300k
	FilterClaimsOver300kMexico
	FilterClaimsCountryLikeU
	JoinPoliciesClaimsInner
	JoinPoliciesClaimsLeftOuter
	JoinPoliciesWithoutClaims
	GroupPremiumByClass
	GroupPremiumByClassYear
	GroupPremiumClaimsByClassYear
	GroupClaimsByCountry
	GroupPoliciesWithMultipleClaims

	shapeCount
)

var shapeNames = [shapeCount]string{
	SelectPolicies:                  "select_policies",
	SelectPoliciesOrderByPremium:    "select_policies_order_by_premium",
	SelectPolicyID:                  "select_policy_id",
	SelectPolicyIDPremium:           "select_policy_id_premium",
	SelectClaims:                    "select_claims",
	SelectClaimsOrderByAmount:       "select_claims_order_by_amount",
	SelectClaimID:                   "select_claim_id",
	SelectClaimIDAmount:             "select_claim_id_amount",
	FilterMarinePolicies:            "filter_marine_policies",
	FilterMarine2021Policies:        "filter_marine_2021_policies",
	FilterPolicies2021To2022:        "filter_policies_2021_2022",
	FilterPremium50kTo100k:          "filter_premium_50k_100k",
	FilterClaimsOver300k:            "filter_claims_over_300k",
	FilterClaimsOver300kMexico:      "filter_claims_over_300k_mexico",
	FilterClaimsCountryLikeU:        "filter_claims_country_like_u",
	JoinPoliciesClaimsInner:         "join_policies_claims_inner",
	JoinPoliciesClaimsLeftOuter:     "join_policies_claims_left_outer",
	JoinPoliciesWithoutClaims:       "join_policies_without_claims",
	GroupPremiumByClass:             "group_premium_by_class",
	GroupPremiumByClassYear:         "group_premium_by_class_year",
	GroupPremiumClaimsByClassYear:   "group_premium_claims_by_class_year",
	GroupClaimsByCountry:            "group_claims_by_country",
	GroupPoliciesWithMultipleClaims: "group_policies_with_multiple_claims",
}

// Valid reports whether s is a catalog shape.
func (s Shape) Valid() bool {
	return s >= 0 && s < shapeCount
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// MarshalText encodes the shape as its name.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText decodes a shape name.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseShape returns the shape with the given name.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Shapes returns every catalog shape in display order.
func Shapes() []Shape {
	shapes := make([]Shape, 0, shapeCount)
	for s := Shape(0); s < shapeCount; s++ {
		shapes = append(shapes, s)
	}
	return shapes
}

// Category groups shapes the way the cheatsheet pages do.
type Category string

// Shape categories.
const (
	Selecting Category = "selecting"
	Filtering Category = "filtering"
	Joining   Category = "joining"
	Grouping  Category = "grouping"
)

// Categories returns the categories in display order.
func Categories() []Category {
	return []Category{Selecting, Filtering, Joining, Grouping}
}
