package dataset

import (
	"ormcheatsheet/models"
)

// Dataset is one generated frame of policies and claims. It is built once and
// handed to whoever loads or inspects it; it is not modified after Generate.
type Dataset struct {
	Seed     int64
	Policies []models.Policy
	Claims   []models.Claim

	policyIndex map[string]int
}

func newDataset(seed int64, policies []models.Policy, claims []models.Claim) *Dataset {
	idx := make(map[string]int, len(policies))
	for i, p := range policies {
		idx[p.PolicyID] = i
	}
	return &Dataset{
		Seed:        seed,
		Policies:    policies,
		Claims:      claims,
		policyIndex: idx,
	}
}

// PolicyByID looks up a policy by identifier.
func (d *Dataset) PolicyByID(id string) (models.Policy, bool) {
	i, ok := d.policyIndex[id]
	if !ok {
		return models.Policy{}, false
	}
	return d.Policies[i], true
}

// ClaimsForPolicy returns the claims filed against policy id, in claim order.
func (d *Dataset) ClaimsForPolicy(id string) []models.Claim {
	var out []models.Claim
	for _, c := range d.Claims {
		if c.PolicyID == id {
			out = append(out, c)
		}
	}
	return out
}

// ClaimCounts returns the number of claims per policy id. Policies without
// claims are absent from the map.
func (d *Dataset) ClaimCounts() map[string]int {
	counts := make(map[string]int)
	for _, c := range d.Claims {
		counts[c.PolicyID]++
	}
	return counts
}

// IsLargeLoss reports whether a claim amount reaches LargeLossThreshold.
func IsLargeLoss(c models.Claim) bool {
	return c.ClaimGBP >= LargeLossThreshold
}
