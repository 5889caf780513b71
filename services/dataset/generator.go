package dataset

import (
	"fmt"
	"math/rand"
	"sort"

	"ormcheatsheet/models"
	"ormcheatsheet/utils"
)

// Fixed value sets sampled by the generator.
var (
	Classes           = []string{"Marine", "Property", "Aviation"}
	UnderwritingYears = []int{2021, 2022, 2023}
	Countries         = []string{"UK", "USA", "China", "Mexico", "France"}
)

// yearWeights are relative draw weights for UnderwritingYears (1/6, 2/6, 3/6).
var yearWeights = []int{1, 2, 3}

const (
	// DefaultSeed keeps the sample data stable across runs.
	DefaultSeed int64 = 41

	// DefaultPolicyCount is the number of generated policies.
	DefaultPolicyCount = 100

	// DefaultClaimCount is the number of generated claims.
	DefaultClaimCount = 30

	// LargeLossThreshold marks a claim as a large loss (claim_gbp >= threshold).
	LargeLossThreshold int64 = 300000

	exposureUnit      int64 = 1000000
	maxExposureUnits        = 9
	premiumRatePct    int64 = 5
	maxClaimFactor          = 11
	claimFactorDivide int64 = 10
)

// Options controls dataset size and the random seed.
type Options struct {
	Seed        int64
	PolicyCount int `validate:"gte=1"`
	ClaimCount  int `validate:"gte=0"`
}

// DefaultOptions returns the demonstration defaults: seed 41, 100 policies, 30 claims.
func DefaultOptions() Options {
	return Options{
		Seed:        DefaultSeed,
		PolicyCount: DefaultPolicyCount,
		ClaimCount:  DefaultClaimCount,
	}
}

// Validate checks option ranges. All but one claim must land on distinct
// policies, so ClaimCount may exceed PolicyCount by at most one.
func (o Options) Validate() error {
	if err := utils.ValidateStruct(&o); err != nil {
		return err
	}
	if o.ClaimCount > o.PolicyCount+1 {
		return fmt.Errorf("claim count %d exceeds policy count %d + 1", o.ClaimCount, o.PolicyCount)
	}
	return nil
}

// Generate builds a deterministic dataset from opts. The same options always
// produce the same rows.
func Generate(opts Options) (*Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset options: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	policies := generatePolicies(rng, opts.PolicyCount)
	claims := generateClaims(rng, policies, opts.ClaimCount)

	return newDataset(opts.Seed, policies, claims), nil
}

func generatePolicies(rng *rand.Rand, n int) []models.Policy {
	classIDs := make([]string, n)
	for i := range classIDs {
		classIDs[i] = Classes[rng.Intn(len(Classes))]
	}

	years := make([]int, n)
	for i := range years {
		years[i] = weightedYear(rng)
	}
	sort.Ints(years)

	policies := make([]models.Policy, n)
	for i := range policies {
		exposure := int64(rng.Intn(maxExposureUnits)+1) * exposureUnit
		policies[i] = models.Policy{
			PolicyID:   PolicyID(i + 1),
			ClassID:    classIDs[i],
			UWYear:     years[i],
			PremiumGBP: exposure * premiumRatePct / 100,
		}
	}
	return policies
}

func generateClaims(rng *rand.Rand, policies []models.Policy, n int) []models.Claim {
	if n == 0 {
		return []models.Claim{}
	}

	countries := make([]string, n)
	for i := range countries {
		countries[i] = Countries[rng.Intn(len(Countries))]
	}

	// n-1 distinct policies, then one repeat: exactly one policy ends up with two claims.
	distinct := n - 1
	if distinct == 0 {
		distinct = 1
	}
	refs := append([]int(nil), rng.Perm(len(policies))[:distinct]...)
	if n >= 2 {
		refs = append(refs, refs[rng.Intn(len(refs))])
	}
	rng.Shuffle(len(refs), func(i, j int) { refs[i], refs[j] = refs[j], refs[i] })

	claims := make([]models.Claim, n)
	for i := range claims {
		policy := policies[refs[i]]
		factor := int64(rng.Intn(maxClaimFactor) + 1)
		claims[i] = models.Claim{
			ClaimID:  ClaimID(i + 1),
			Country:  countries[i],
			ClaimGBP: policy.PremiumGBP * factor / claimFactorDivide,
			PolicyID: policy.PolicyID,
		}
	}
	return claims
}

func weightedYear(rng *rand.Rand) int {
	total := 0
	for _, w := range yearWeights {
		total += w
	}
	r := rng.Intn(total)
	for i, w := range yearWeights {
		if r < w {
			return UnderwritingYears[i]
		}
		r -= w
	}
	return UnderwritingYears[len(UnderwritingYears)-1]
}

// PolicyID formats the identifier of the n-th policy (1-based).
func PolicyID(n int) string {
	return fmt.Sprintf("p_%d", n)
}

// ClaimID formats the identifier of the n-th claim (1-based).
func ClaimID(n int) string {
	return fmt.Sprintf("c_%d", n)
}
