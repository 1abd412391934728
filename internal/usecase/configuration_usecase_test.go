package usecase

import (
	"context"
	"errors"
	"testing"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestConfigurationUseCase_AddItem(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil)
		_, err := uc.AddItem(context.Background(), "   ", AddItemInput{Description: "x", Quantity: 1})
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Project{}, nil)

		_, err := uc.AddItem(context.Background(), "p-404", AddItemInput{Description: "x", Quantity: 1})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("frozen project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusOrderConfirmed), nil)

		_, err := uc.AddItem(context.Background(), "p-1", AddItemInput{Description: "Winch", Quantity: 1, UnitPriceExclVat: 250})
		if !errors.Is(err, ErrConfigurationFrozen) {
			t.Fatalf("expected ErrConfigurationFrozen, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)

		_, err := uc.AddItem(context.Background(), "p-1", AddItemInput{Description: " ", Quantity: 1})
		if !errors.Is(err, ErrInvalidItemInput) {
			t.Fatalf("expected ErrInvalidItemInput, got %v", err)
		}
	})

	t.Run("success recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)
		expectUpdate(repo)

		res, err := uc.AddItem(context.Background(), "p-1", AddItemInput{Description: "Winch", Quantity: 2, UnitPriceExclVat: 250})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Configuration.Items) != 4 {
			t.Fatalf("expected 4 items, got %d", len(res.Configuration.Items))
		}
		added := res.Configuration.Items[3]
		if added.ID == "" || added.SortOrder != 3 || added.LineTotalExclVat != 500 || !added.IsIncluded {
			t.Fatalf("unexpected added item: %+v", added)
		}
		// 300 + 9700 + 500, excluded teak does not count.
		if res.Configuration.SubtotalExclVat != 10500 {
			t.Fatalf("expected subtotal 10500, got %v", res.Configuration.SubtotalExclVat)
		}
	})
}

func TestConfigurationUseCase_UpdateItem(t *testing.T) {
	t.Run("frozen project returns policy error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusInProduction), nil)

		qty := 5.0
		_, err := uc.UpdateItem(context.Background(), "p-1", "item-hull", UpdateItemInput{Quantity: &qty})
		if !errors.Is(err, ErrConfigurationFrozen) {
			t.Fatalf("expected ErrConfigurationFrozen, got %v", err)
		}
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)

		qty := 5.0
		_, err := uc.UpdateItem(context.Background(), "p-1", "nope", UpdateItemInput{Quantity: &qty})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("line total stays quantity times unit price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusQuoted), nil)
		expectUpdate(repo)

		qty, price := 3.0, 175.5
		res, err := uc.UpdateItem(context.Background(), "p-1", "item-hull", UpdateItemInput{Quantity: &qty, UnitPriceExclVat: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item := res.Configuration.Items[res.Configuration.ItemIndex("item-hull")]
		if item.LineTotalExclVat != 526.5 {
			t.Fatalf("expected line total 526.5, got %v", item.LineTotalExclVat)
		}
		if res.Configuration.SubtotalExclVat != 10226.5 {
			t.Fatalf("expected subtotal 10226.5, got %v", res.Configuration.SubtotalExclVat)
		}
	})
}

func TestConfigurationUseCase_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIProjectRepository(ctrl)
	uc := NewConfigurationUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)
	expectUpdate(repo)

	res, err := uc.RemoveItem(context.Background(), "p-1", "item-hull")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Configuration.ItemIndex("item-hull") != -1 {
		t.Fatalf("expected item removed")
	}
	// Sort order stays contiguous after removal.
	for i, it := range res.Configuration.Items {
		if it.SortOrder != i {
			t.Fatalf("expected contiguous sort order, got %+v", res.Configuration.Items)
		}
	}
	if res.Configuration.SubtotalExclVat != 9700 {
		t.Fatalf("expected subtotal 9700, got %v", res.Configuration.SubtotalExclVat)
	}
}

func TestConfigurationUseCase_MoveItem(t *testing.T) {
	t.Run("invalid direction", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil)
		_, err := uc.MoveItem(context.Background(), "p-1", "item-hull", "sideways")
		if !errors.Is(err, ErrInvalidMoveDirection) {
			t.Fatalf("expected ErrInvalidMoveDirection, got %v", err)
		}
	})

	t.Run("move down swaps neighbours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)
		expectUpdate(repo)

		res, err := uc.MoveItem(context.Background(), "p-1", "item-hull", MoveDown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Configuration.Items[0].ID != "item-engine" || res.Configuration.Items[1].ID != "item-hull" {
			t.Fatalf("unexpected order: %+v", res.Configuration.Items)
		}
		for i, it := range res.Configuration.Items {
			if it.SortOrder != i {
				t.Fatalf("expected contiguous sort order after move")
			}
		}
	})

	t.Run("move up at the top is a no-op without save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)

		res, err := uc.MoveItem(context.Background(), "p-1", "item-hull", MoveUp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Configuration.Items[0].ID != "item-hull" {
			t.Fatalf("expected unchanged order")
		}
	})
}

func TestConfigurationUseCase_UpdatePricing(t *testing.T) {
	t.Run("rejects out of range percent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)

		pct := 120.0
		_, err := uc.UpdatePricing(context.Background(), "p-1", UpdatePricingInput{DiscountPercent: &pct})
		if !errors.Is(err, ErrInvalidItemInput) {
			t.Fatalf("expected ErrInvalidItemInput, got %v", err)
		}
	})

	t.Run("discount percent recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)
		expectUpdate(repo)

		pct := 10.0
		res, err := uc.UpdatePricing(context.Background(), "p-1", UpdatePricingInput{DiscountPercent: &pct})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Configuration.DiscountAmount != 1000 {
			t.Fatalf("expected discount 1000, got %v", res.Configuration.DiscountAmount)
		}
		if res.Configuration.TotalInclVat != 10890 {
			t.Fatalf("expected total 10890, got %v", res.Configuration.TotalInclVat)
		}
	})
}

func TestConfigurationUseCase_RevisionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIProjectRepository(ctrl)
	uc := NewConfigurationUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)
	// Conditional update failed: zero value, nil error.
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).Return(entities.Project{}, nil)

	_, err := uc.AddItem(context.Background(), "p-1", AddItemInput{Description: "Winch", Quantity: 1, UnitPriceExclVat: 10})
	if !errors.Is(err, ErrRevisionConflict) {
		t.Fatalf("expected ErrRevisionConflict, got %v", err)
	}
}
