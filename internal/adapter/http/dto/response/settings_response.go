package response

import "botenwerf/internal/domain/entities"

type CostEstimationResponse struct {
	DefaultRatio  float64 `json:"default_ratio"`
	WarnThreshold float64 `json:"warn_threshold"`
}

func FromCostEstimation(s entities.CostEstimationSettings) CostEstimationResponse {
	return CostEstimationResponse{
		DefaultRatio:  s.DefaultRatio,
		WarnThreshold: s.WarnThreshold,
	}
}
