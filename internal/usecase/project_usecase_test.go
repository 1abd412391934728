package usecase

import (
	"context"
	"errors"
	"testing"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/domain/statusmachine"
	"botenwerf/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateProjectInput{Title: "  ", Type: entities.ProjectTypeNewBuild})
		if !errors.Is(err, ErrEmptyProjectTitle) {
			t.Fatalf("expected ErrEmptyProjectTitle, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateProjectInput{Title: "Sloop 720", Type: "SUBMARINE"})
		if !errors.Is(err, ErrInvalidProjectType) {
			t.Fatalf("expected ErrInvalidProjectType, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientRepo := mocks.NewMockIClientRepository(ctrl)
		uc := NewProjectUseCase(nil, clientRepo, nil, nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), CreateProjectInput{Title: "Sloop 720", Type: entities.ProjectTypeNewBuild, ClientID: "c-404"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("numbers come from the sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		seqRepo := mocks.NewMockISequenceRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, seqRepo, nil)

		seqRepo.EXPECT().Next(gomock.Any(), "project_number").Return(int64(1), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)

		p, err := uc.Create(context.Background(), CreateProjectInput{Title: "Sloop 720", Type: entities.ProjectTypeNewBuild})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ProjectNumber != "BW-0001" {
			t.Fatalf("expected BW-0001, got %s", p.ProjectNumber)
		}
		if p.Status != entities.StatusDraft || p.Revision != 1 {
			t.Fatalf("unexpected new project: status=%s revision=%d", p.Status, p.Revision)
		}
		if p.Configuration.VatRate != 21 {
			t.Fatalf("expected default VAT rate 21, got %v", p.Configuration.VatRate)
		}
		if p.Configuration.PropulsionType != entities.PropulsionNone {
			t.Fatalf("expected propulsion default, got %s", p.Configuration.PropulsionType)
		}
		if p.ID == "" || p.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamps set")
		}
	})
}

func TestProjectUseCase_Transition(t *testing.T) {
	t.Run("guard failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil)

		// No accepted quote on file.
		p := testProject(entities.StatusOfferSent)
		p.Quotes = []entities.ProjectQuote{{ID: "q-1", Status: entities.QuoteStatusSent}}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, err := uc.Transition(context.Background(), "p-1", entities.StatusOrderConfirmed)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)

		_, err := uc.Transition(context.Background(), "p-1", entities.StatusInProduction)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("order confirmation freezes the configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil)

		p := testProject(entities.StatusOfferSent)
		p.Quotes = []entities.ProjectQuote{{ID: "q-1", Status: entities.QuoteStatusAccepted}}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		expectUpdate(repo)

		res, err := uc.Transition(context.Background(), "p-1", entities.StatusOrderConfirmed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusOrderConfirmed {
			t.Fatalf("expected ORDER_CONFIRMED, got %s", res.Status)
		}
		if !statusmachine.IsFrozen(res.Status) {
			t.Fatalf("expected frozen after confirmation")
		}
		if len(res.BOMSnapshots) != 0 {
			t.Fatalf("confirmation must not generate a snapshot")
		}
	})

	t.Run("production start appends a bom snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		settingsRepo := mocks.NewMockISettingsRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, settingsRepo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusOrderConfirmed), nil)
		settingsRepo.EXPECT().GetCostEstimation(gomock.Any()).Return(entities.DefaultCostEstimationSettings(), nil)
		expectUpdate(repo)

		res, err := uc.Transition(context.Background(), "p-1", entities.StatusInProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusInProduction {
			t.Fatalf("expected IN_PRODUCTION, got %s", res.Status)
		}
		if len(res.BOMSnapshots) != 1 {
			t.Fatalf("expected one snapshot, got %d", len(res.BOMSnapshots))
		}
		s := res.BOMSnapshots[0]
		if s.Trigger != entities.BOMTriggerProductionStart || s.SnapshotNumber != 1 {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
		// Hull has no cost on file: 300 x 0.6 estimated. Engine cost is actual.
		if s.ActualCostTotal != 6500 || s.EstimatedCostTotal != 180 {
			t.Fatalf("unexpected cost split: %+v", s)
		}
	})
}

func TestProjectUseCase_AvailableTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusDraft), nil)

	options, err := uc.AvailableTransitions(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("expected a single next hop, got %d", len(options))
	}
	if options[0].Target != entities.StatusQuoted || !options[0].Check.IsValid {
		t.Fatalf("unexpected option: %+v", options[0])
	}
}

func TestProjectUseCase_PreviewTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusOrderConfirmed), nil)

	check, err := uc.PreviewTransition(context.Background(), "p-1", entities.StatusInProduction)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !check.IsValid || len(check.MilestoneEffects) != 1 {
		t.Fatalf("unexpected check: %+v", check)
	}
	if check.MilestoneEffects[0].Type != statusmachine.EffectBOMSnapshot {
		t.Fatalf("expected bom snapshot effect, got %+v", check.MilestoneEffects[0])
	}
}

func TestProjectUseCase_Archive(t *testing.T) {
	t.Run("sets the archive timestamp once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(testProject(entities.StatusClosed), nil)
		expectUpdate(repo)

		res, err := uc.Archive(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ArchivedAt == nil {
			t.Fatalf("expected archive timestamp")
		}
	})

	t.Run("idempotent on an archived project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil, nil)

		p := testProject(entities.StatusClosed)
		archived := p.CreatedAt
		p.ArchivedAt = &archived
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		// No Update expectation: the second archive must not write.

		res, err := uc.Archive(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ArchivedAt == nil || !res.ArchivedAt.Equal(archived) {
			t.Fatalf("expected original archive timestamp preserved")
		}
	})
}
