package services

import (
	"testing"

	"github.com/policyvault/policy-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeFixture(t *testing.T) {
	policies := []domain.Policy{
		{Name: "Term", Value: 100000, Status: domain.PolicyStatusActive},
		{Name: "Term", Value: 50000, Status: domain.PolicyStatusActive},
		{Name: "Health", Value: 20000, Status: domain.PolicyStatusPending},
	}

	report := Summarize(policies, nil)

	assert.Equal(t, 3, report.Summary.TotalPolicies)
	assert.Equal(t, 2, report.Summary.ActivePolicies)
	assert.Equal(t, 170000.0, report.Summary.TotalCoverage)
	assert.Equal(t, 0, report.Summary.TotalNominees)

	distribution := map[string]float64{}
	for _, p := range report.Charts.PolicyDistribution {
		distribution[p.Name] = p.Value
	}
	require.Len(t, distribution, 2)
	assert.Equal(t, 2.0, distribution["Term"])
	assert.Equal(t, 1.0, distribution["Health"])

	values := map[string]float64{}
	for _, p := range report.Charts.PolicyValues {
		values[p.Name] = p.Value
	}
	assert.Equal(t, 150000.0, values["Term"])
	assert.Equal(t, 20000.0, values["Health"])
}

func TestSummarizeEmpty(t *testing.T) {
	report := Summarize(nil, nil)

	assert.Equal(t, 0, report.Summary.TotalPolicies)
	assert.Equal(t, 0.0, report.Summary.TotalCoverage)
	// Charts serialize as empty arrays, never null.
	assert.NotNil(t, report.Charts.PolicyDistribution)
	assert.NotNil(t, report.Charts.PolicyValues)
	assert.Empty(t, report.Charts.PolicyDistribution)
}

func TestSummarizeIsDeterministic(t *testing.T) {
	policies := []domain.Policy{
		{Name: "Term", Value: 100, Status: domain.PolicyStatusActive},
		{Name: "Auto", Value: 200, Status: domain.PolicyStatusRenewalDue},
	}
	nominees := []domain.Nominee{{Name: "n1"}, {Name: "n2"}}

	first := Summarize(policies, nominees)
	second := Summarize(policies, nominees)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, 2, first.Summary.TotalNominees)
	assert.ElementsMatch(t, first.Charts.PolicyValues, second.Charts.PolicyValues)
}
