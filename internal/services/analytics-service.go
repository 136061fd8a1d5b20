package services

import (
	"github.com/policyvault/policy-service/internal/domain"
	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/repository"
)

type AnalyticsService interface {
	Report(ownerID string) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	policies repository.PolicyRepository
	nominees repository.NomineeRepository
}

func NewAnalyticsService(policies repository.PolicyRepository, nominees repository.NomineeRepository) AnalyticsService {
	return &analyticsService{
		policies: policies,
		nominees: nominees,
	}
}

func (s *analyticsService) Report(ownerID string) (*dto.AnalyticsResponse, error) {
	policies, err := s.policies.FindAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	nominees, err := s.nominees.FindAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	report := Summarize(policies, nominees)
	return &report, nil
}

// Summarize is a pure reduce over already-owner-scoped records. Chart point
// order follows map iteration and is deliberately unspecified.
func Summarize(policies []domain.Policy, nominees []domain.Nominee) dto.AnalyticsResponse {
	summary := dto.AnalyticsSummary{
		TotalPolicies: len(policies),
		TotalNominees: len(nominees),
	}

	distribution := map[string]float64{}
	values := map[string]float64{}

	for _, p := range policies {
		if p.Status == domain.PolicyStatusActive {
			summary.ActivePolicies++
		}
		summary.TotalCoverage += p.Value
		distribution[p.Name]++
		values[p.Name] += p.Value
	}

	charts := dto.AnalyticsCharts{
		PolicyDistribution: []dto.ChartPoint{},
		PolicyValues:       []dto.ChartPoint{},
	}
	for name, count := range distribution {
		charts.PolicyDistribution = append(charts.PolicyDistribution, dto.ChartPoint{Name: name, Value: count})
	}
	for name, total := range values {
		charts.PolicyValues = append(charts.PolicyValues, dto.ChartPoint{Name: name, Value: total})
	}

	return dto.AnalyticsResponse{Summary: summary, Charts: charts}
}
