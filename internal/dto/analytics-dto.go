package dto

type AnalyticsSummary struct {
	TotalPolicies  int     `json:"totalPolicies"`
	ActivePolicies int     `json:"activePolicies"`
	TotalCoverage  float64 `json:"totalCoverage"`
	TotalNominees  int     `json:"totalNominees"`
}

// ChartPoint is one grouped bucket; ordering across points is not guaranteed.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type AnalyticsCharts struct {
	PolicyDistribution []ChartPoint `json:"policyDistribution"`
	PolicyValues       []ChartPoint `json:"policyValues"`
}

type AnalyticsResponse struct {
	Summary AnalyticsSummary `json:"summary"`
	Charts  AnalyticsCharts  `json:"charts"`
}
