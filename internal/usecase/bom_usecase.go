package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSnapshotID = errors.New("invalid snapshot id")
	ErrSnapshotNotFound  = errors.New("bom snapshot not found")
	ErrInvalidBOMTrigger = errors.New("invalid bom trigger")
	ErrNoSnapshots       = errors.New("project has no bom snapshots yet")
)

// BOMView pairs a snapshot with the warning signal derived from the current
// settings. Generation itself never fails on a high estimated share; the
// warning is advisory and consumed by the UI.

type BOMView struct {
	Snapshot       entities.BOMSnapshot `json:"snapshot"`
	EstimatedShare float64              `json:"estimated_share"`
	Warning        bool                 `json:"warning"`
}

// IBOMUseCase derives append-only bill-of-materials snapshots from the
// current configuration, with a cost-estimation fallback for items without a
// supplier cost on file.

type IBOMUseCase interface {
	GenerateBOM(ctx context.Context, projectID string, trigger entities.BOMTrigger) (entities.Project, error)
	Latest(ctx context.Context, projectID string) (BOMView, error)
	ExportCSV(ctx context.Context, projectID, snapshotID string) ([]byte, string, error)
}

type BOMUseCase struct {
	repo         interfaces.IProjectRepository
	settingsRepo interfaces.ISettingsRepository
}

var _ IBOMUseCase = (*BOMUseCase)(nil)

func NewBOMUseCase(repo interfaces.IProjectRepository, settingsRepo interfaces.ISettingsRepository) *BOMUseCase {
	return &BOMUseCase{repo: repo, settingsRepo: settingsRepo}
}

func (u *BOMUseCase) GenerateBOM(ctx context.Context, projectID string, trigger entities.BOMTrigger) (entities.Project, error) {
	if !trigger.Valid() {
		return entities.Project{}, ErrInvalidBOMTrigger
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Configuration.IncludedItemCount() == 0 {
		return entities.Project{}, ErrEmptyConfiguration
	}

	settings, err := u.settingsRepo.GetCostEstimation(ctx)
	if err != nil {
		return entities.Project{}, err
	}

	snapshot := buildBOMSnapshot(&p, trigger, settings, time.Now().UTC())
	p.BOMSnapshots = append(p.BOMSnapshots, snapshot)
	return saveProject(ctx, u.repo, p)
}

func (u *BOMUseCase) Latest(ctx context.Context, projectID string) (BOMView, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return BOMView{}, err
	}
	latest := p.LatestBOMSnapshot()
	if latest == nil {
		return BOMView{}, ErrNoSnapshots
	}

	settings, err := u.settingsRepo.GetCostEstimation(ctx)
	if err != nil {
		return BOMView{}, err
	}

	share := latest.EstimatedShare()
	return BOMView{
		Snapshot:       *latest,
		EstimatedShare: share,
		Warning:        share > settings.WarnThreshold,
	}, nil
}

// ExportCSV renders a snapshot deterministically: a header row, then one row
// per item in configuration sort order, with a cost-type column marking
// ACTUAL versus ESTIMATED lines.
func (u *BOMUseCase) ExportCSV(ctx context.Context, projectID, snapshotID string) ([]byte, string, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return nil, "", err
	}
	snapshotID = strings.TrimSpace(snapshotID)
	if snapshotID == "" {
		return nil, "", ErrInvalidSnapshotID
	}

	var snapshot *entities.BOMSnapshot
	for i := range p.BOMSnapshots {
		if p.BOMSnapshots[i].ID == snapshotID {
			snapshot = &p.BOMSnapshots[i]
			break
		}
	}
	if snapshot == nil {
		return nil, "", ErrSnapshotNotFound
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"position", "description", "quantity", "unit", "unit_cost_excl_vat", "total_cost_excl_vat", "cost_type", "estimation_ratio", "sell_price_excl_vat"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	items := make([]entities.BOMItem, len(snapshot.Items))
	copy(items, snapshot.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	for i, it := range items {
		costType := "ACTUAL"
		ratio, sell := "", ""
		if it.IsEstimated {
			costType = "ESTIMATED"
			ratio = formatFloat(it.EstimationRatio)
			sell = formatFloat(it.SellPriceExclVat)
		}
		row := []string{
			strconv.Itoa(i + 1),
			it.Description,
			formatFloat(it.Quantity),
			it.Unit,
			formatFloat(it.UnitCost),
			formatFloat(it.TotalCost),
			costType,
			ratio,
			sell,
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-bom-%03d.csv", p.ProjectNumber, snapshot.SnapshotNumber)
	return buf.Bytes(), filename, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildBOMSnapshot derives a snapshot from the included configuration items.
// Cost resolution per item: the actual supplier cost when on file, otherwise
// sell price x defaultRatio with estimation bookkeeping. Shared with the
// production-start transition, which appends a snapshot as a milestone side
// effect.
func buildBOMSnapshot(p *entities.Project, trigger entities.BOMTrigger, settings entities.CostEstimationSettings, now time.Time) entities.BOMSnapshot {
	items := make([]entities.ConfigurationItem, 0, len(p.Configuration.Items))
	for _, it := range p.Configuration.Items {
		if it.IsIncluded {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	snapshot := entities.BOMSnapshot{
		ID:                  uuid.NewString(),
		SnapshotNumber:      p.NextSnapshotNumber(),
		Trigger:             trigger,
		Items:               make([]entities.BOMItem, 0, len(items)),
		CostEstimationRatio: settings.DefaultRatio,
		CreatedAt:           now,
	}

	for _, it := range items {
		bomItem := entities.BOMItem{
			ItemID:      it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			SortOrder:   it.SortOrder,
		}
		if it.UnitCostExclVat != nil {
			bomItem.UnitCost = *it.UnitCostExclVat
		} else {
			bomItem.IsEstimated = true
			bomItem.EstimationRatio = settings.DefaultRatio
			bomItem.SellPriceExclVat = it.UnitPriceExclVat
			bomItem.UnitCost = entities.RoundMoney(it.UnitPriceExclVat * settings.DefaultRatio)
		}
		bomItem.TotalCost = entities.RoundMoney(bomItem.UnitCost * bomItem.Quantity)

		if bomItem.IsEstimated {
			snapshot.EstimatedCostCount++
			snapshot.EstimatedCostTotal += bomItem.TotalCost
		} else {
			snapshot.ActualCostTotal += bomItem.TotalCost
		}
		snapshot.Items = append(snapshot.Items, bomItem)
	}

	snapshot.TotalParts = len(snapshot.Items)
	snapshot.EstimatedCostTotal = entities.RoundMoney(snapshot.EstimatedCostTotal)
	snapshot.ActualCostTotal = entities.RoundMoney(snapshot.ActualCostTotal)
	snapshot.TotalCostExclVat = entities.RoundMoney(snapshot.EstimatedCostTotal + snapshot.ActualCostTotal)
	return snapshot
}
