package entities

// CostEstimationSettings drives the BOM cost fallback. DefaultRatio converts
// a sell price into an estimated unit cost; WarnThreshold is the estimated
// share above which the UI should warn. Both are administrator-mutable.

type CostEstimationSettings struct {
	DefaultRatio  float64 `json:"default_ratio"`
	WarnThreshold float64 `json:"warn_threshold"`
}

func DefaultCostEstimationSettings() CostEstimationSettings {
	return CostEstimationSettings{
		DefaultRatio:  0.6,
		WarnThreshold: 0.3,
	}
}
