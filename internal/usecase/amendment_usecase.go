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
	ErrProjectNotFrozen     = errors.New("project is not frozen; edit the configuration directly")
	ErrProjectLocked        = errors.New("project is closed; no further changes are possible")
	ErrEmptyReason          = errors.New("amendment reason must not be empty")
	ErrEmptyChanges         = errors.New("amendment contains no changes")
	ErrInvalidAmendmentType = errors.New("invalid amendment type")
)

// AmendmentItemUpdate addresses one existing item with a partial update.

type AmendmentItemUpdate struct {
	ItemID  string
	Updates UpdateItemInput
}

// AmendmentChanges describes a configuration change declaratively. The live
// item list is never replaced wholesale; every change is an explicit add,
// remove or update.

type AmendmentChanges struct {
	ItemsToAdd    []AddItemInput
	ItemsToRemove []string
	ItemsToUpdate []AmendmentItemUpdate
}

func (c AmendmentChanges) empty() bool {
	return len(c.ItemsToAdd) == 0 && len(c.ItemsToRemove) == 0 && len(c.ItemsToUpdate) == 0
}

// IAmendmentUseCase records post-freeze configuration changes as immutable,
// priced records. The price impact is computed by applying the changes to a
// clone first; the amendment record and the configuration change are then
// persisted in one aggregate write — both succeed or neither does.

type IAmendmentUseCase interface {
	RequestAmendment(ctx context.Context, projectID string, typ entities.AmendmentType, reason string, changes AmendmentChanges, audit entities.AuditUser) (entities.Project, error)
	ListAmendments(ctx context.Context, projectID string) ([]entities.ProjectAmendment, error)
}

type AmendmentUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IAmendmentUseCase = (*AmendmentUseCase)(nil)

func NewAmendmentUseCase(repo interfaces.IProjectRepository) *AmendmentUseCase {
	return &AmendmentUseCase{repo: repo}
}

func (u *AmendmentUseCase) RequestAmendment(ctx context.Context, projectID string, typ entities.AmendmentType, reason string, changes AmendmentChanges, audit entities.AuditUser) (entities.Project, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if statusmachine.IsLocked(p.Status) {
		return entities.Project{}, ErrProjectLocked
	}
	if !statusmachine.IsFrozen(p.Status) {
		return entities.Project{}, ErrProjectNotFrozen
	}
	if !typ.Valid() {
		return entities.Project{}, ErrInvalidAmendmentType
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Project{}, ErrEmptyReason
	}
	if changes.empty() {
		return entities.Project{}, ErrEmptyChanges
	}

	// Apply the changes hypothetically on a clone; the live configuration is
	// untouched until the whole amendment is known to be valid.
	clone := p.Configuration.Clone()
	affected, err := applyAmendmentChanges(&clone, changes)
	if err != nil {
		return entities.Project{}, err
	}
	clone.NormalizeSortOrder()
	clone.Recalculate()

	impact := entities.RoundMoney(clone.SubtotalExclVat - p.Configuration.SubtotalExclVat)

	amendment := entities.ProjectAmendment{
		ID:                 uuid.NewString(),
		AmendmentNumber:    p.NextAmendmentNumber(),
		Type:               typ,
		Reason:             reason,
		AffectedItems:      affected,
		PriceImpactExclVat: impact,
		RequestedBy:        audit.UserName,
		ApprovedBy:         audit.UserName,
		CreatedAt:          time.Now().UTC(),
	}

	p.Configuration = clone
	p.Amendments = append(p.Amendments, amendment)

	updated, err := saveProject(ctx, u.repo, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[amendment] project=%s number=%d impact=%.2f items=%d", updated.ProjectNumber, amendment.AmendmentNumber, impact, len(affected))
	return updated, nil
}

func (u *AmendmentUseCase) ListAmendments(ctx context.Context, projectID string) ([]entities.ProjectAmendment, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return nil, err
	}
	return append([]entities.ProjectAmendment{}, p.Amendments...), nil
}

func applyAmendmentChanges(cfg *entities.Configuration, changes AmendmentChanges) ([]string, error) {
	affected := []string{}

	for _, id := range changes.ItemsToRemove {
		idx, err := findItem(cfg, id)
		if err != nil {
			return nil, err
		}
		affected = append(affected, fmt.Sprintf("removed: %s", cfg.Items[idx].Description))
		cfg.Items = append(cfg.Items[:idx], cfg.Items[idx+1:]...)
	}

	for _, upd := range changes.ItemsToUpdate {
		idx, err := findItem(cfg, upd.ItemID)
		if err != nil {
			return nil, err
		}
		if err := applyItemUpdate(&cfg.Items[idx], upd.Updates); err != nil {
			return nil, err
		}
		affected = append(affected, fmt.Sprintf("updated: %s", cfg.Items[idx].Description))
	}

	for _, add := range changes.ItemsToAdd {
		item, err := newConfigurationItem(add, len(cfg.Items))
		if err != nil {
			return nil, err
		}
		cfg.Items = append(cfg.Items, item)
		affected = append(affected, fmt.Sprintf("added: %s", item.Description))
	}

	return affected, nil
}
