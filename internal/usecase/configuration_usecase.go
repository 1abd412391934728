package usecase

import (
	"context"
	"errors"
	"strings"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/domain/statusmachine"
	"botenwerf/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrConfigurationFrozen  = errors.New("configuration is frozen; use an amendment")
	ErrItemNotFound         = errors.New("configuration item not found")
	ErrInvalidItemID        = errors.New("invalid item id")
	ErrInvalidItemInput     = errors.New("invalid item input")
	ErrInvalidMoveDirection = errors.New("invalid move direction")
)

// MoveDirection moves an item one position in the render order.

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// AddItemInput is the payload for a new configuration item. IsIncluded
// defaults to true when nil.

type AddItemInput struct {
	Description      string
	Quantity         float64
	Unit             string
	UnitPriceExclVat float64
	UnitCostExclVat  *float64
	IsIncluded       *bool
	CERelevant       bool
	SafetyCritical   bool
}

// UpdateItemInput carries a partial update; nil fields are left untouched.

type UpdateItemInput struct {
	Description      *string
	Quantity         *float64
	Unit             *string
	UnitPriceExclVat *float64
	UnitCostExclVat  *float64
	IsIncluded       *bool
	CERelevant       *bool
	SafetyCritical   *bool
}

// UpdatePricingInput adjusts the discount/VAT settings of the configuration.

type UpdatePricingInput struct {
	DiscountPercent *float64
	DiscountAmount  *float64
	VatRate         *float64
}

// IConfigurationUseCase mutates a project's equipment line items. Every
// operation is gated on the status machine: once the project is frozen the
// caller gets a policy error and must go through an amendment instead —
// nothing is routed there automatically.

type IConfigurationUseCase interface {
	AddItem(ctx context.Context, projectID string, in AddItemInput) (entities.Project, error)
	UpdateItem(ctx context.Context, projectID, itemID string, in UpdateItemInput) (entities.Project, error)
	RemoveItem(ctx context.Context, projectID, itemID string) (entities.Project, error)
	MoveItem(ctx context.Context, projectID, itemID string, direction MoveDirection) (entities.Project, error)
	UpdatePricing(ctx context.Context, projectID string, in UpdatePricingInput) (entities.Project, error)
}

type ConfigurationUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IConfigurationUseCase = (*ConfigurationUseCase)(nil)

func NewConfigurationUseCase(repo interfaces.IProjectRepository) *ConfigurationUseCase {
	return &ConfigurationUseCase{repo: repo}
}

func (u *ConfigurationUseCase) AddItem(ctx context.Context, projectID string, in AddItemInput) (entities.Project, error) {
	p, err := u.loadEditable(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	item, err := newConfigurationItem(in, len(p.Configuration.Items))
	if err != nil {
		return entities.Project{}, err
	}

	p.Configuration.Items = append(p.Configuration.Items, item)
	p.Configuration.NormalizeSortOrder()
	p.Configuration.Recalculate()
	return saveProject(ctx, u.repo, p)
}

func (u *ConfigurationUseCase) UpdateItem(ctx context.Context, projectID, itemID string, in UpdateItemInput) (entities.Project, error) {
	p, err := u.loadEditable(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	idx, err := findItem(&p.Configuration, itemID)
	if err != nil {
		return entities.Project{}, err
	}
	if err := applyItemUpdate(&p.Configuration.Items[idx], in); err != nil {
		return entities.Project{}, err
	}

	p.Configuration.Recalculate()
	return saveProject(ctx, u.repo, p)
}

func (u *ConfigurationUseCase) RemoveItem(ctx context.Context, projectID, itemID string) (entities.Project, error) {
	p, err := u.loadEditable(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	idx, err := findItem(&p.Configuration, itemID)
	if err != nil {
		return entities.Project{}, err
	}

	p.Configuration.Items = append(p.Configuration.Items[:idx], p.Configuration.Items[idx+1:]...)
	p.Configuration.NormalizeSortOrder()
	p.Configuration.Recalculate()
	return saveProject(ctx, u.repo, p)
}

func (u *ConfigurationUseCase) MoveItem(ctx context.Context, projectID, itemID string, direction MoveDirection) (entities.Project, error) {
	if direction != MoveUp && direction != MoveDown {
		return entities.Project{}, ErrInvalidMoveDirection
	}

	p, err := u.loadEditable(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	p.Configuration.NormalizeSortOrder()
	idx, err := findItem(&p.Configuration, itemID)
	if err != nil {
		return entities.Project{}, err
	}

	other := idx - 1
	if direction == MoveDown {
		other = idx + 1
	}
	if other < 0 || other >= len(p.Configuration.Items) {
		// Already at the edge; nothing to persist.
		return p, nil
	}

	items := p.Configuration.Items
	items[idx], items[other] = items[other], items[idx]
	for i := range items {
		items[i].SortOrder = i
	}
	p.Configuration.Recalculate()
	return saveProject(ctx, u.repo, p)
}

func (u *ConfigurationUseCase) UpdatePricing(ctx context.Context, projectID string, in UpdatePricingInput) (entities.Project, error) {
	p, err := u.loadEditable(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	cfg := &p.Configuration
	if in.DiscountPercent != nil {
		if *in.DiscountPercent < 0 || *in.DiscountPercent > 100 {
			return entities.Project{}, ErrInvalidItemInput
		}
		cfg.DiscountPercent = *in.DiscountPercent
	}
	if in.DiscountAmount != nil {
		if *in.DiscountAmount < 0 {
			return entities.Project{}, ErrInvalidItemInput
		}
		cfg.DiscountAmount = *in.DiscountAmount
	}
	if in.VatRate != nil {
		if *in.VatRate < 0 || *in.VatRate > 100 {
			return entities.Project{}, ErrInvalidItemInput
		}
		cfg.VatRate = *in.VatRate
	}

	cfg.Recalculate()
	return saveProject(ctx, u.repo, p)
}

func (u *ConfigurationUseCase) loadEditable(ctx context.Context, projectID string) (entities.Project, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if !statusmachine.IsEditable(p.Status) {
		return entities.Project{}, ErrConfigurationFrozen
	}
	return p, nil
}

func findItem(cfg *entities.Configuration, itemID string) (int, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return -1, ErrInvalidItemID
	}
	idx := cfg.ItemIndex(itemID)
	if idx < 0 {
		return -1, ErrItemNotFound
	}
	return idx, nil
}

// newConfigurationItem builds a validated item; shared with the amendment
// flow, which adds items to a clone of the frozen configuration.
func newConfigurationItem(in AddItemInput, sortOrder int) (entities.ConfigurationItem, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" || in.Quantity <= 0 || in.UnitPriceExclVat < 0 {
		return entities.ConfigurationItem{}, ErrInvalidItemInput
	}
	if in.UnitCostExclVat != nil && *in.UnitCostExclVat < 0 {
		return entities.ConfigurationItem{}, ErrInvalidItemInput
	}

	included := true
	if in.IsIncluded != nil {
		included = *in.IsIncluded
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "pcs"
	}

	return entities.ConfigurationItem{
		ID:               uuid.NewString(),
		Description:      desc,
		Quantity:         in.Quantity,
		Unit:             unit,
		UnitPriceExclVat: in.UnitPriceExclVat,
		UnitCostExclVat:  in.UnitCostExclVat,
		IsIncluded:       included,
		CERelevant:       in.CERelevant,
		SafetyCritical:   in.SafetyCritical,
		SortOrder:        sortOrder,
	}, nil
}

func applyItemUpdate(item *entities.ConfigurationItem, in UpdateItemInput) error {
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return ErrInvalidItemInput
		}
		item.Description = desc
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return ErrInvalidItemInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil && strings.TrimSpace(*in.Unit) != "" {
		item.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.UnitPriceExclVat != nil {
		if *in.UnitPriceExclVat < 0 {
			return ErrInvalidItemInput
		}
		item.UnitPriceExclVat = *in.UnitPriceExclVat
	}
	if in.UnitCostExclVat != nil {
		if *in.UnitCostExclVat < 0 {
			return ErrInvalidItemInput
		}
		v := *in.UnitCostExclVat
		item.UnitCostExclVat = &v
	}
	if in.IsIncluded != nil {
		item.IsIncluded = *in.IsIncluded
	}
	if in.CERelevant != nil {
		item.CERelevant = *in.CERelevant
	}
	if in.SafetyCritical != nil {
		item.SafetyCritical = *in.SafetyCritical
	}
	return nil
}
