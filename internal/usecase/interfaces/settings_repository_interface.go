package interfaces

import (
	"context"

	"botenwerf/internal/domain/entities"
)

// ISettingsRepository stores administrator-mutable settings. GetCostEstimation
// returns the defaults when nothing has been stored yet, so callers never
// need a fallback of their own.

type ISettingsRepository interface {
	GetCostEstimation(ctx context.Context) (entities.CostEstimationSettings, error)
	PutCostEstimation(ctx context.Context, s entities.CostEstimationSettings) (entities.CostEstimationSettings, error)
}
