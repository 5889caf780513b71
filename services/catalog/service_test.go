package catalog

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"ormcheatsheet/bootstrap"
	"ormcheatsheet/models"
	"ormcheatsheet/services/dataset"
	"ormcheatsheet/services/job"
	"ormcheatsheet/services/store"
	"ormcheatsheet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStore   *store.Store
	testDataset *dataset.Dataset
	testService Service
)

func TestMain(m *testing.M) {
	code, err := runWithStore(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog test setup failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func runWithStore(m *testing.M) (int, error) {
	ctx := context.Background()

	ds, err := dataset.Generate(dataset.DefaultOptions())
	if err != nil {
		return 0, err
	}
	st, err := store.Open(ctx, store.Options{Database: "catalogtest", StartupTimeout: 5 * time.Second})
	if err != nil {
		return 0, err
	}
	defer st.Close()

	if err := bootstrap.LoadData(ctx, st.DB, ds); err != nil {
		return 0, err
	}

	testStore = st
	testDataset = ds
	testService = NewQueryService(st)
	return m.Run(), nil
}

func run(t *testing.T, shape Shape) *Result {
	t.Helper()
	res, err := testService.Run(context.Background(), shape)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, shape, res.Shape)
	assert.NotEmpty(t, res.SQL)
	return res
}

func num(t *testing.T, v interface{}) float64 {
	t.Helper()
	f, ok := utils.ToFloat64(v)
	require.True(t, ok, "expected numeric value, got %T(%v)", v, v)
	return f
}

func TestRun_EveryShapeSucceeds(t *testing.T) {
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			res := run(t, s)
			assert.NotEmpty(t, res.Columns)
		})
	}
}

func TestRun_UnknownShape(t *testing.T) {
	_, err := testService.Run(context.Background(), Shape(1000))
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestRun_SelectPolicies(t *testing.T) {
	res := run(t, SelectPolicies)
	assert.Equal(t, []string{"policy_id", "class_id", "uw_year", "premium_gbp"}, res.Columns)
	require.Len(t, res.Records, len(testDataset.Policies))

	byID := map[string]Record{}
	for _, r := range res.Records {
		byID[r["policy_id"].(string)] = r
	}
	for _, p := range testDataset.Policies {
		r, ok := byID[p.PolicyID]
		require.True(t, ok, p.PolicyID)
		assert.Equal(t, p.ClassID, r["class_id"])
		assert.Equal(t, int64(p.UWYear), r["uw_year"])
		assert.Equal(t, p.PremiumGBP, r["premium_gbp"])
	}
}

func TestRun_SelectSubsetColumns(t *testing.T) {
	res := run(t, SelectPolicyID)
	assert.Equal(t, []string{"policy_id"}, res.Columns)
	assert.Len(t, res.Records, len(testDataset.Policies))

	res = run(t, SelectClaimIDAmount)
	assert.Equal(t, []string{"claim_id", "claim_gbp"}, res.Columns)
	assert.Len(t, res.Records, len(testDataset.Claims))
}

func TestRun_OrderByIsDescending(t *testing.T) {
	res := run(t, SelectPoliciesOrderByPremium)
	for i := 1; i < len(res.Records); i++ {
		assert.GreaterOrEqual(t, num(t, res.Records[i-1]["premium_gbp"]), num(t, res.Records[i]["premium_gbp"]))
	}

	res = run(t, SelectClaimsOrderByAmount)
	require.Len(t, res.Records, len(testDataset.Claims))
	for i := 1; i < len(res.Records); i++ {
		assert.GreaterOrEqual(t, num(t, res.Records[i-1]["claim_gbp"]), num(t, res.Records[i]["claim_gbp"]))
	}
}

func countPolicies(match func(p models.Policy) bool) int {
	n := 0
	for _, p := range testDataset.Policies {
		if match(p) {
			n++
		}
	}
	return n
}

func TestRun_PolicyFilters(t *testing.T) {
	res := run(t, FilterMarinePolicies)
	for _, r := range res.Records {
		assert.Equal(t, "Marine", r["class_id"])
	}
	assert.Len(t, res.Records, countPolicies(func(p models.Policy) bool {
		return p.ClassID == "Marine"
	}))

	res = run(t, FilterMarine2021Policies)
	for _, r := range res.Records {
		assert.Equal(t, "Marine", r["class_id"])
		assert.Equal(t, int64(2021), r["uw_year"])
	}
	assert.Len(t, res.Records, countPolicies(func(p models.Policy) bool {
		return p.ClassID == "Marine" && p.UWYear == 2021
	}))

	res = run(t, FilterPolicies2021To2022)
	for _, r := range res.Records {
		assert.Contains(t, []int64{2021, 2022}, r["uw_year"])
	}
	assert.Len(t, res.Records, countPolicies(func(p models.Policy) bool {
		return p.UWYear != 2023
	}))
}

func TestRun_PremiumRangeIsInclusive(t *testing.T) {
	res := run(t, FilterPremium50kTo100k)
	for _, r := range res.Records {
		v := num(t, r["premium_gbp"])
		assert.True(t, v >= 50000 && v <= 100000, "premium %v out of range", v)
	}
	assert.Len(t, res.Records, countPolicies(func(p models.Policy) bool {
		return p.PremiumGBP >= 50000 && p.PremiumGBP <= 100000
	}))
}

func TestRun_ClaimFilters(t *testing.T) {
	var over, overMexico, likeU int
	for _, c := range testDataset.Claims {
		if c.ClaimGBP > dataset.LargeLossThreshold {
			over++
			if c.Country == "Mexico" {
				overMexico++
			}
		}
		if strings.HasPrefix(c.Country, "U") {
			likeU++
		}
	}

	res := run(t, FilterClaimsOver300k)
	assert.Len(t, res.Records, over)
	for _, r := range res.Records {
		assert.Greater(t, num(t, r["claim_gbp"]), float64(dataset.LargeLossThreshold))
	}

	res = run(t, FilterClaimsOver300kMexico)
	assert.Len(t, res.Records, overMexico)
	for _, r := range res.Records {
		assert.Equal(t, "Mexico", r["country"])
	}

	res = run(t, FilterClaimsCountryLikeU)
	assert.Len(t, res.Records, likeU)
	for _, r := range res.Records {
		assert.Contains(t, []interface{}{"UK", "USA"}, r["country"])
	}
}

func TestRun_Joins(t *testing.T) {
	counts := testDataset.ClaimCounts()
	withoutClaims := len(testDataset.Policies) - len(counts)

	inner := run(t, JoinPoliciesClaimsInner)
	assert.Len(t, inner.Records, len(testDataset.Claims))
	for _, r := range inner.Records {
		assert.NotNil(t, r["claim_id"])
	}

	outer := run(t, JoinPoliciesClaimsLeftOuter)
	assert.GreaterOrEqual(t, len(outer.Records), len(inner.Records))
	assert.Len(t, outer.Records, len(testDataset.Claims)+withoutClaims)

	nullRows := map[string]bool{}
	for _, r := range outer.Records {
		if r["claim_id"] == nil {
			assert.Nil(t, r["country"])
			assert.Nil(t, r["claim_gbp"])
			nullRows[r["policy_id"].(string)] = true
		}
	}
	assert.Len(t, nullRows, withoutClaims)
	for id := range nullRows {
		assert.Zero(t, counts[id], "policy %s has claims but joined to NULL", id)
	}

	without := run(t, JoinPoliciesWithoutClaims)
	assert.Len(t, without.Records, withoutClaims)
	for _, r := range without.Records {
		assert.True(t, nullRows[r["policy_id"].(string)])
	}
}

func TestRun_GroupPremiumByClass(t *testing.T) {
	want := map[string]int64{}
	for _, p := range testDataset.Policies {
		want[p.ClassID] += p.PremiumGBP
	}

	res := run(t, GroupPremiumByClass)
	assert.Equal(t, []string{"class_id", "sum_premium"}, res.Columns)
	require.Len(t, res.Records, len(want))

	var classes []string
	for _, r := range res.Records {
		class := r["class_id"].(string)
		classes = append(classes, class)
		assert.Equal(t, float64(want[class]), num(t, r["sum_premium"]), class)
	}
	assert.True(t, sort.StringsAreSorted(classes))
}

func TestRun_GroupPremiumByClassYear(t *testing.T) {
	type key struct {
		class string
		year  int64
	}
	sums := map[key]int64{}
	counts := map[key]int64{}
	for _, p := range testDataset.Policies {
		k := key{p.ClassID, int64(p.UWYear)}
		sums[k] += p.PremiumGBP
		counts[k]++
	}

	res := run(t, GroupPremiumByClassYear)
	require.Len(t, res.Records, len(sums))
	for _, r := range res.Records {
		k := key{r["class_id"].(string), r["uw_year"].(int64)}
		assert.Equal(t, float64(sums[k]), num(t, r["sum_premium"]))
		assert.Equal(t, float64(counts[k]), num(t, r["policy_count"]))
		assert.InDelta(t, float64(sums[k])/float64(counts[k]), num(t, r["avg_premium"]), 0.01)
		assert.LessOrEqual(t, num(t, r["min_premium"]), num(t, r["max_premium"]))
	}
}

func TestRun_GroupPremiumClaimsByClassYear(t *testing.T) {
	res := run(t, GroupPremiumClaimsByClassYear)

	var policyRows, claimRows float64
	for _, r := range res.Records {
		policyRows += num(t, r["policy_count"])
		claimRows += num(t, r["count_claims"])
	}
	withoutClaims := len(testDataset.Policies) - len(testDataset.ClaimCounts())
	assert.Equal(t, float64(len(testDataset.Claims)+withoutClaims), policyRows)
	assert.Equal(t, float64(len(testDataset.Claims)), claimRows)
}

func TestRun_GroupClaimsByCountry(t *testing.T) {
	want := map[string]int64{}
	for _, c := range testDataset.Claims {
		want[c.Country]++
	}

	res := run(t, GroupClaimsByCountry)
	require.Len(t, res.Records, len(want))
	for _, r := range res.Records {
		country := r["country"].(string)
		assert.Equal(t, float64(want[country]), num(t, r["count_claims"]), country)
	}
}

func TestRun_PolicyWithMultipleClaims(t *testing.T) {
	res := run(t, GroupPoliciesWithMultipleClaims)
	require.Len(t, res.Records, 1)

	id := res.Records[0]["policy_id"].(string)
	assert.Equal(t, float64(2), num(t, res.Records[0]["count_claims"]))
	assert.Len(t, testDataset.ClaimsForPolicy(id), 2)
}

func TestRun_ConcurrentSessions(t *testing.T) {
	shapes := Shapes()
	errs := make(chan error, len(shapes))
	for _, s := range shapes {
		go func(s Shape) {
			_, err := testService.Run(context.Background(), s)
			errs <- err
		}(s)
	}
	for range shapes {
		assert.NoError(t, <-errs)
	}
}

func TestDescribe_MatchesRun(t *testing.T) {
	q, err := testService.Describe(GroupPoliciesWithMultipleClaims)
	require.NoError(t, err)
	res := run(t, GroupPoliciesWithMultipleClaims)
	assert.Equal(t, q.SQL, res.SQL)
	assert.Contains(t, q.SQL, "HAVING")
}

func TestList(t *testing.T) {
	assert.Len(t, testService.List(), len(Shapes()))
}

func TestRun_RecordsHistory(t *testing.T) {
	history := job.NewRunHistory(10)
	svc := NewQueryService(testStore, WithHistory(history))

	_, err := svc.Run(context.Background(), SelectClaims)
	require.NoError(t, err)

	runs := history.GetAllRuns()
	require.Len(t, runs, 1)
	assert.Equal(t, "select_claims", runs[0].Shape)
	assert.Equal(t, job.StatusCompleted, runs[0].Status)
	assert.Equal(t, len(testDataset.Claims), runs[0].Rows)
	assert.NotEmpty(t, runs[0].SessionID)
}
