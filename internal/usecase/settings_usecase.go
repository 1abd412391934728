package usecase

import (
	"context"
	"errors"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces"
)

var (
	ErrInvalidRatio     = errors.New("default ratio must be between 0 (exclusive) and 1")
	ErrInvalidThreshold = errors.New("warn threshold must be between 0 and 1")
)

// ISettingsUseCase exposes the administrator-mutable cost-estimation
// settings consumed by BOM generation.

type ISettingsUseCase interface {
	GetCostEstimation(ctx context.Context) (entities.CostEstimationSettings, error)
	UpdateCostEstimation(ctx context.Context, s entities.CostEstimationSettings) (entities.CostEstimationSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) GetCostEstimation(ctx context.Context) (entities.CostEstimationSettings, error) {
	return u.repo.GetCostEstimation(ctx)
}

func (u *SettingsUseCase) UpdateCostEstimation(ctx context.Context, s entities.CostEstimationSettings) (entities.CostEstimationSettings, error) {
	if s.DefaultRatio <= 0 || s.DefaultRatio > 1 {
		return entities.CostEstimationSettings{}, ErrInvalidRatio
	}
	if s.WarnThreshold < 0 || s.WarnThreshold > 1 {
		return entities.CostEstimationSettings{}, ErrInvalidThreshold
	}
	return u.repo.PutCostEstimation(ctx, s)
}
