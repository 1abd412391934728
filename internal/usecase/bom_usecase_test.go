package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// bomProject carries one item with an actual cost (100 x 2) and one without
// a cost but a 1,000 sell price.
func bomProject() entities.Project {
	cost := 100.0
	p := entities.Project{
		ID:            "p-1",
		ProjectNumber: "BW-0001",
		Status:        entities.StatusOrderConfirmed,
		Revision:      2,
		Configuration: entities.Configuration{
			VatRate: 21,
			Items: []entities.ConfigurationItem{
				{ID: "item-rope", Description: "Mooring ropes", Quantity: 2, Unit: "pcs", UnitPriceExclVat: 180, UnitCostExclVat: &cost, IsIncluded: true, SortOrder: 0},
				{ID: "item-nav", Description: "Navigation package", Quantity: 1, Unit: "pcs", UnitPriceExclVat: 1000, IsIncluded: true, SortOrder: 1},
			},
		},
	}
	p.Configuration.Recalculate()
	return p
}

func TestBOMUseCase_GenerateBOM(t *testing.T) {
	t.Run("invalid trigger", func(t *testing.T) {
		uc := NewBOMUseCase(nil, nil)
		_, err := uc.GenerateBOM(context.Background(), "p-1", "WHENEVER")
		if !errors.Is(err, ErrInvalidBOMTrigger) {
			t.Fatalf("expected ErrInvalidBOMTrigger, got %v", err)
		}
	})

	t.Run("empty configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewBOMUseCase(repo, nil)

		p := bomProject()
		p.Configuration.Items = nil
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, err := uc.GenerateBOM(context.Background(), "p-1", entities.BOMTriggerManual)
		if !errors.Is(err, ErrEmptyConfiguration) {
			t.Fatalf("expected ErrEmptyConfiguration, got %v", err)
		}
	})

	t.Run("cost estimation fallback and aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		settings := mocks.NewMockISettingsRepository(ctrl)
		uc := NewBOMUseCase(repo, settings)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(bomProject(), nil)
		settings.EXPECT().GetCostEstimation(gomock.Any()).Return(entities.DefaultCostEstimationSettings(), nil)
		expectUpdate(repo)

		res, err := uc.GenerateBOM(context.Background(), "p-1", entities.BOMTriggerManual)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.BOMSnapshots) != 1 {
			t.Fatalf("expected one snapshot, got %d", len(res.BOMSnapshots))
		}
		s := res.BOMSnapshots[0]
		if s.SnapshotNumber != 1 || s.Trigger != entities.BOMTriggerManual {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
		if s.ActualCostTotal != 200 {
			t.Fatalf("expected actual total 200, got %v", s.ActualCostTotal)
		}
		if s.EstimatedCostTotal != 600 || s.EstimatedCostCount != 1 {
			t.Fatalf("expected estimated total 600 (count 1), got %v (%d)", s.EstimatedCostTotal, s.EstimatedCostCount)
		}
		if s.TotalCostExclVat != 800 || s.TotalParts != 2 {
			t.Fatalf("unexpected aggregates: %+v", s)
		}

		nav := s.Items[1]
		if !nav.IsEstimated || nav.EstimationRatio != 0.6 || nav.SellPriceExclVat != 1000 || nav.UnitCost != 600 {
			t.Fatalf("unexpected estimated item: %+v", nav)
		}
		rope := s.Items[0]
		if rope.IsEstimated || rope.UnitCost != 100 || rope.TotalCost != 200 {
			t.Fatalf("unexpected actual item: %+v", rope)
		}
	})

	t.Run("regeneration appends with incremented number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		settings := mocks.NewMockISettingsRepository(ctrl)
		uc := NewBOMUseCase(repo, settings)

		p := bomProject()
		p.BOMSnapshots = []entities.BOMSnapshot{{ID: "s-1", SnapshotNumber: 1, CreatedAt: time.Now().UTC()}}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		settings.EXPECT().GetCostEstimation(gomock.Any()).Return(entities.DefaultCostEstimationSettings(), nil)
		expectUpdate(repo)

		res, err := uc.GenerateBOM(context.Background(), "p-1", entities.BOMTriggerProductionStart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.BOMSnapshots) != 2 {
			t.Fatalf("expected old snapshot retained, got %d", len(res.BOMSnapshots))
		}
		if res.BOMSnapshots[0].ID != "s-1" {
			t.Fatalf("existing snapshot must not be touched")
		}
		if res.BOMSnapshots[1].SnapshotNumber != 2 {
			t.Fatalf("expected snapshot number 2, got %d", res.BOMSnapshots[1].SnapshotNumber)
		}
	})
}

func TestBOMUseCase_Latest(t *testing.T) {
	t.Run("no snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewBOMUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(bomProject(), nil)

		_, err := uc.Latest(context.Background(), "p-1")
		if !errors.Is(err, ErrNoSnapshots) {
			t.Fatalf("expected ErrNoSnapshots, got %v", err)
		}
	})

	t.Run("warning above threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		settings := mocks.NewMockISettingsRepository(ctrl)
		uc := NewBOMUseCase(repo, settings)

		p := bomProject()
		p.BOMSnapshots = []entities.BOMSnapshot{
			{ID: "s-1", SnapshotNumber: 1, TotalCostExclVat: 800, EstimatedCostTotal: 600},
		}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		settings.EXPECT().GetCostEstimation(gomock.Any()).Return(entities.DefaultCostEstimationSettings(), nil)

		view, err := uc.Latest(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.EstimatedShare != 0.75 || !view.Warning {
			t.Fatalf("expected warning at share 0.75, got %+v", view)
		}
	})
}

func TestBOMUseCase_ExportCSV(t *testing.T) {
	t.Run("snapshot not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewBOMUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(bomProject(), nil)

		_, _, err := uc.ExportCSV(context.Background(), "p-1", "nope")
		if !errors.Is(err, ErrSnapshotNotFound) {
			t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("deterministic rows in sort order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewBOMUseCase(repo, nil)

		p := bomProject()
		p.BOMSnapshots = []entities.BOMSnapshot{{
			ID:             "s-1",
			SnapshotNumber: 1,
			Items: []entities.BOMItem{
				{ItemID: "b", Description: "Navigation package", Quantity: 1, Unit: "pcs", UnitCost: 600, TotalCost: 600, IsEstimated: true, EstimationRatio: 0.6, SellPriceExclVat: 1000, SortOrder: 1},
				{ItemID: "a", Description: "Mooring ropes", Quantity: 2, Unit: "pcs", UnitCost: 100, TotalCost: 200, SortOrder: 0},
			},
		}}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		data, filename, err := uc.ExportCSV(context.Background(), "p-1", "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filename != "BW-0001-bom-001.csv" {
			t.Fatalf("unexpected filename %q", filename)
		}

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[0], "position,description,quantity") {
			t.Fatalf("unexpected header: %s", lines[0])
		}
		if lines[1] != "1,Mooring ropes,2,pcs,100,200,ACTUAL,," {
			t.Fatalf("unexpected first row: %s", lines[1])
		}
		if lines[2] != "2,Navigation package,1,pcs,600,600,ESTIMATED,0.6,1000" {
			t.Fatalf("unexpected second row: %s", lines[2])
		}
	})
}
