package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/domain/statusmachine"
	"botenwerf/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyProjectTitle       = errors.New("project title must not be empty")
	ErrInvalidProjectType      = errors.New("invalid project type")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

const projectNumberSequence = "project_number"

// CreateProjectInput is the payload for a new project. The project starts in
// DRAFT with an empty configuration and the default VAT rate.

type CreateProjectInput struct {
	Title          string
	Type           entities.ProjectType
	ClientID       string
	PropulsionType entities.PropulsionType
}

// TransitionOption pairs a reachable status with its validation outcome so
// the UI can render the next steps and their blockers in one call.

type TransitionOption struct {
	Target entities.ProjectStatus        `json:"target"`
	Check  statusmachine.TransitionCheck `json:"check"`
}

// IProjectUseCase orchestrates status transitions against a persisted
// project and applies milestone side effects. Freezing is not a separate
// user action: it is derived from the status the transition commits, and the
// production-start transition appends a BOM snapshot.
//
// PreviewTransition exists so the caller can surface milestone effects for
// user confirmation before the committing call; the API is split exactly so
// confirmation has no mid-transaction suspension point.

type IProjectUseCase interface {
	Create(ctx context.Context, in CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context, clientID string) ([]entities.Project, error)
	Archive(ctx context.Context, id string) (entities.Project, error)
	AvailableTransitions(ctx context.Context, id string) ([]TransitionOption, error)
	PreviewTransition(ctx context.Context, id string, target entities.ProjectStatus) (statusmachine.TransitionCheck, error)
	Transition(ctx context.Context, id string, target entities.ProjectStatus) (entities.Project, error)
}

type ProjectUseCase struct {
	repo         interfaces.IProjectRepository
	clientRepo   interfaces.IClientRepository
	sequenceRepo interfaces.ISequenceRepository
	settingsRepo interfaces.ISettingsRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	clientRepo interfaces.IClientRepository,
	sequenceRepo interfaces.ISequenceRepository,
	settingsRepo interfaces.ISettingsRepository,
) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo, sequenceRepo: sequenceRepo, settingsRepo: settingsRepo}
}

func (u *ProjectUseCase) Create(ctx context.Context, in CreateProjectInput) (entities.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Project{}, ErrEmptyProjectTitle
	}
	if !in.Type.Valid() {
		return entities.Project{}, ErrInvalidProjectType
	}

	clientID := strings.TrimSpace(in.ClientID)
	if clientID != "" {
		client, err := u.clientRepo.GetByID(ctx, clientID)
		if err != nil {
			return entities.Project{}, err
		}
		if client.ID == "" {
			return entities.Project{}, ErrClientNotFound
		}
	}

	seq, err := u.sequenceRepo.Next(ctx, projectNumberSequence)
	if err != nil {
		return entities.Project{}, err
	}

	propulsion := in.PropulsionType
	if propulsion == "" {
		propulsion = entities.PropulsionNone
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:            uuid.NewString(),
		ProjectNumber: fmt.Sprintf("BW-%04d", seq),
		Title:         title,
		Type:          in.Type,
		Status:        entities.StatusDraft,
		ClientID:      clientID,
		Configuration: entities.Configuration{
			Items:          []entities.ConfigurationItem{},
			VatRate:        21,
			PropulsionType: propulsion,
		},
		Quotes:       []entities.ProjectQuote{},
		Amendments:   []entities.ProjectAmendment{},
		BOMSnapshots: []entities.BOMSnapshot{},
		Tasks:        []entities.ProjectTask{},
		Revision:     1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return loadProject(ctx, u.repo, id)
}

func (u *ProjectUseCase) List(ctx context.Context, clientID string) ([]entities.Project, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID != "" {
		return u.repo.ListByClientID(ctx, clientID)
	}
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) Archive(ctx context.Context, id string) (entities.Project, error) {
	p, err := loadProject(ctx, u.repo, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ArchivedAt != nil {
		return p, nil
	}
	now := time.Now().UTC()
	p.ArchivedAt = &now
	return saveProject(ctx, u.repo, p)
}

func (u *ProjectUseCase) AvailableTransitions(ctx context.Context, id string) ([]TransitionOption, error) {
	p, err := loadProject(ctx, u.repo, id)
	if err != nil {
		return nil, err
	}
	tctx := statusmachine.ContextFor(&p)
	options := []TransitionOption{}
	for _, target := range statusmachine.ValidNextStatuses(p.Status) {
		options = append(options, TransitionOption{
			Target: target,
			Check:  statusmachine.ValidateTransition(p.Status, target, tctx),
		})
	}
	return options, nil
}

func (u *ProjectUseCase) PreviewTransition(ctx context.Context, id string, target entities.ProjectStatus) (statusmachine.TransitionCheck, error) {
	p, err := loadProject(ctx, u.repo, id)
	if err != nil {
		return statusmachine.TransitionCheck{}, err
	}
	return statusmachine.ValidateTransition(p.Status, target, statusmachine.ContextFor(&p)), nil
}

// Transition revalidates against the current aggregate state and commits the
// status change together with its milestone side effects in a single
// aggregate write.
func (u *ProjectUseCase) Transition(ctx context.Context, id string, target entities.ProjectStatus) (entities.Project, error) {
	p, err := loadProject(ctx, u.repo, id)
	if err != nil {
		return entities.Project{}, err
	}

	check := statusmachine.ValidateTransition(p.Status, target, statusmachine.ContextFor(&p))
	if !check.IsValid {
		return entities.Project{}, fmt.Errorf("%w: %s", ErrInvalidStatusTransition, strings.Join(check.Errors, "; "))
	}

	from := p.Status
	p.Status = target

	for _, eff := range check.MilestoneEffects {
		switch eff.Type {
		case statusmachine.EffectBOMSnapshot:
			settings, err := u.settingsRepo.GetCostEstimation(ctx)
			if err != nil {
				return entities.Project{}, err
			}
			snapshot := buildBOMSnapshot(&p, entities.BOMTriggerProductionStart, settings, time.Now().UTC())
			p.BOMSnapshots = append(p.BOMSnapshots, snapshot)
		case statusmachine.EffectConfigurationFreeze:
			// The freeze is derived from the status itself; nothing to store.
		}
	}

	updated, err := saveProject(ctx, u.repo, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project] transition project=%s %s -> %s effects=%d", updated.ProjectNumber, from, target, len(check.MilestoneEffects))
	return updated, nil
}
