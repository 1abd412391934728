package response

import (
	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase"
)

// BOMViewResponse is the latest snapshot plus the estimation warning derived
// from the current settings.
type BOMViewResponse struct {
	Snapshot       entities.BOMSnapshot `json:"snapshot"`
	EstimatedShare float64              `json:"estimated_share"`
	Warning        bool                 `json:"warning"`
}

func FromBOMView(v usecase.BOMView) BOMViewResponse {
	return BOMViewResponse{
		Snapshot:       v.Snapshot,
		EstimatedShare: v.EstimatedShare,
		Warning:        v.Warning,
	}
}
