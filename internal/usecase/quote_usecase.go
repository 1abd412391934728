package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/domain/statusmachine"
	"botenwerf/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrEmptyConfiguration     = errors.New("configuration has no items to quote")
	ErrOpenQuoteExists        = errors.New("another quote is still open (draft or sent)")
	ErrQuoteNotDraft          = errors.New("quote is not in draft")
	ErrInvalidQuoteTransition = errors.New("invalid quote status transition")
	ErrQuotingClosed          = errors.New("quotes can only be managed before order confirmation")
)

const defaultQuoteValidity = 30 * 24 * time.Hour

// CreateQuoteInput carries the optional terms of a new draft.

type CreateQuoteInput struct {
	ValidUntil *time.Time
	Terms      string
}

// UpdateQuoteInput is a partial update, permitted only while the quote is a
// draft.

type UpdateQuoteInput struct {
	ValidUntil *time.Time
	Terms      *string
}

// IQuoteUseCase manages quote versions on a project. Creating a draft
// snapshots the current configuration into immutable lines; accepting one
// quote never auto-rejects its siblings — that stays a deliberate caller
// decision.

type IQuoteUseCase interface {
	CreateDraft(ctx context.Context, projectID string, in CreateQuoteInput, audit entities.AuditUser) (entities.Project, error)
	UpdateDraft(ctx context.Context, projectID, quoteID string, in UpdateQuoteInput, audit entities.AuditUser) (entities.Project, error)
	MarkAsSent(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error)
	MarkAsAccepted(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error)
	MarkAsRejected(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error)
	CreateNewVersion(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error)
}

type QuoteUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IProjectRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) CreateDraft(ctx context.Context, projectID string, in CreateQuoteInput, audit entities.AuditUser) (entities.Project, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if !statusmachine.IsEditable(p.Status) {
		return entities.Project{}, ErrQuotingClosed
	}
	if p.Configuration.IncludedItemCount() == 0 {
		return entities.Project{}, ErrEmptyConfiguration
	}
	if p.OpenQuote() != nil {
		return entities.Project{}, ErrOpenQuoteExists
	}

	now := time.Now().UTC()
	quote := buildQuoteFromConfiguration(&p, now, audit)
	quote.Terms = strings.TrimSpace(in.Terms)
	if in.ValidUntil != nil {
		quote.ValidUntil = *in.ValidUntil
	}

	p.Quotes = append(p.Quotes, quote)
	return saveProject(ctx, u.repo, p)
}

func (u *QuoteUseCase) UpdateDraft(ctx context.Context, projectID, quoteID string, in UpdateQuoteInput, audit entities.AuditUser) (entities.Project, error) {
	p, quote, err := u.loadQuote(ctx, projectID, quoteID)
	if err != nil {
		return entities.Project{}, err
	}
	if quote.Status != entities.QuoteStatusDraft {
		return entities.Project{}, ErrQuoteNotDraft
	}

	if in.ValidUntil != nil {
		quote.ValidUntil = *in.ValidUntil
	}
	if in.Terms != nil {
		quote.Terms = strings.TrimSpace(*in.Terms)
	}
	quote.UpdatedBy = audit.UserName
	quote.UpdatedAt = time.Now().UTC()
	return saveProject(ctx, u.repo, p)
}

func (u *QuoteUseCase) MarkAsSent(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error) {
	return u.setStatus(ctx, projectID, quoteID, entities.QuoteStatusDraft, entities.QuoteStatusSent, audit)
}

func (u *QuoteUseCase) MarkAsAccepted(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error) {
	return u.setStatus(ctx, projectID, quoteID, entities.QuoteStatusSent, entities.QuoteStatusAccepted, audit)
}

func (u *QuoteUseCase) MarkAsRejected(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error) {
	return u.setStatus(ctx, projectID, quoteID, entities.QuoteStatusSent, entities.QuoteStatusRejected, audit)
}

// CreateNewVersion copies the lines and terms of an existing quote into a
// fresh draft. The source is marked SUPERSEDED unless it already reached a
// terminal status; the original record is never overwritten.
func (u *QuoteUseCase) CreateNewVersion(ctx context.Context, projectID, quoteID string, audit entities.AuditUser) (entities.Project, error) {
	p, source, err := u.loadQuote(ctx, projectID, quoteID)
	if err != nil {
		return entities.Project{}, err
	}
	if !statusmachine.IsEditable(p.Status) {
		return entities.Project{}, ErrQuotingClosed
	}

	if !source.Status.Terminal() && source.Status != entities.QuoteStatusDraft && source.Status != entities.QuoteStatusSent {
		// ACCEPTED is the basis of a confirmed order; superseding it would
		// detach the order from its contract document.
		return entities.Project{}, ErrInvalidQuoteTransition
	}
	if open := p.OpenQuote(); open != nil && open.ID != source.ID {
		return entities.Project{}, ErrOpenQuoteExists
	}

	now := time.Now().UTC()
	next := *source
	next.ID = uuid.NewString()
	next.QuoteNumber = nextQuoteNumber(&p)
	next.Status = entities.QuoteStatusDraft
	next.Lines = make([]entities.QuoteLine, len(source.Lines))
	copy(next.Lines, source.Lines)
	next.ValidUntil = now.Add(defaultQuoteValidity)
	next.CreatedBy = audit.UserName
	next.UpdatedBy = ""
	next.CreatedAt = now
	next.UpdatedAt = now

	if !source.Status.Terminal() {
		source.Status = entities.QuoteStatusSuperseded
		source.UpdatedBy = audit.UserName
		source.UpdatedAt = now
	}

	p.Quotes = append(p.Quotes, next)
	return saveProject(ctx, u.repo, p)
}

func (u *QuoteUseCase) setStatus(ctx context.Context, projectID, quoteID string, required, target entities.QuoteStatus, audit entities.AuditUser) (entities.Project, error) {
	p, quote, err := u.loadQuote(ctx, projectID, quoteID)
	if err != nil {
		return entities.Project{}, err
	}
	if quote.Status != required {
		return entities.Project{}, fmt.Errorf("%w: %s -> %s requires %s", ErrInvalidQuoteTransition, quote.Status, target, required)
	}
	quote.Status = target
	quote.UpdatedBy = audit.UserName
	quote.UpdatedAt = time.Now().UTC()
	return saveProject(ctx, u.repo, p)
}

func (u *QuoteUseCase) loadQuote(ctx context.Context, projectID, quoteID string) (entities.Project, *entities.ProjectQuote, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, nil, err
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Project{}, nil, ErrInvalidQuoteID
	}
	quote := p.QuoteByID(quoteID)
	if quote == nil {
		return entities.Project{}, nil, ErrQuoteNotFound
	}
	return p, quote, nil
}

func nextQuoteNumber(p *entities.Project) string {
	return fmt.Sprintf("%s-Q%02d", p.ProjectNumber, len(p.Quotes)+1)
}

func buildQuoteFromConfiguration(p *entities.Project, now time.Time, audit entities.AuditUser) entities.ProjectQuote {
	items := make([]entities.ConfigurationItem, 0, len(p.Configuration.Items))
	for _, it := range p.Configuration.Items {
		if it.IsIncluded {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	lines := make([]entities.QuoteLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.QuoteLine{
			Description:      it.Description,
			Quantity:         it.Quantity,
			Unit:             it.Unit,
			UnitPriceExclVat: it.UnitPriceExclVat,
			LineTotalExclVat: it.LineTotalExclVat,
			SortOrder:        it.SortOrder,
		})
	}

	cfg := p.Configuration
	return entities.ProjectQuote{
		ID:              uuid.NewString(),
		QuoteNumber:     nextQuoteNumber(p),
		Status:          entities.QuoteStatusDraft,
		Lines:           lines,
		SubtotalExclVat: cfg.SubtotalExclVat,
		DiscountAmount:  cfg.DiscountAmount,
		VatRate:         cfg.VatRate,
		VatAmount:       cfg.VatAmount,
		TotalInclVat:    cfg.TotalInclVat,
		ValidUntil:      now.Add(defaultQuoteValidity),
		CreatedBy:       audit.UserName,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
