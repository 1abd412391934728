package usecase

import (
	"context"
	"errors"
	"testing"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_UpdateCostEstimation(t *testing.T) {
	t.Run("ratio out of range", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)

		for _, ratio := range []float64{0, -0.1, 1.5} {
			_, err := uc.UpdateCostEstimation(context.Background(), entities.CostEstimationSettings{DefaultRatio: ratio, WarnThreshold: 0.3})
			if !errors.Is(err, ErrInvalidRatio) {
				t.Fatalf("ratio %v: expected ErrInvalidRatio, got %v", ratio, err)
			}
		}
	})

	t.Run("threshold out of range", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)

		_, err := uc.UpdateCostEstimation(context.Background(), entities.CostEstimationSettings{DefaultRatio: 0.6, WarnThreshold: 1.2})
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("valid settings are stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		in := entities.CostEstimationSettings{DefaultRatio: 0.5, WarnThreshold: 0.25}
		repo.EXPECT().PutCostEstimation(gomock.Any(), in).Return(in, nil)

		out, err := uc.UpdateCostEstimation(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != in {
			t.Fatalf("unexpected settings: %+v", out)
		}
	})
}
