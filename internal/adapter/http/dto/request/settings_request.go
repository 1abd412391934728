package request

import "botenwerf/internal/domain/entities"

// CostEstimationRequest updates the BOM cost-estimation settings.
type CostEstimationRequest struct {
	DefaultRatio  float64 `json:"default_ratio" binding:"required"`
	WarnThreshold float64 `json:"warn_threshold"`
}

func (r CostEstimationRequest) ToSettings() entities.CostEstimationSettings {
	return entities.CostEstimationSettings{
		DefaultRatio:  r.DefaultRatio,
		WarnThreshold: r.WarnThreshold,
	}
}
