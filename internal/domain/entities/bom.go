package entities

import "time"

// BOMTrigger records what caused a snapshot to be generated.

type BOMTrigger string

const (
	BOMTriggerManual          BOMTrigger = "MANUAL"
	BOMTriggerOrderConfirmed  BOMTrigger = "ORDER_CONFIRMED"
	BOMTriggerProductionStart BOMTrigger = "PRODUCTION_START"
)

func (t BOMTrigger) Valid() bool {
	switch t {
	case BOMTriggerManual, BOMTriggerOrderConfirmed, BOMTriggerProductionStart:
		return true
	}
	return false
}

// BOMItem is one part line in a snapshot. When no actual supplier cost is on
// file the unit cost is estimated from the sell price and the configured
// ratio, and the ratio used is recorded.

type BOMItem struct {
	ItemID           string  `json:"item_id"`
	Description      string  `json:"description"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	UnitCost         float64 `json:"unit_cost"`
	TotalCost        float64 `json:"total_cost"`
	IsEstimated      bool    `json:"is_estimated"`
	EstimationRatio  float64 `json:"estimation_ratio,omitempty"`
	SellPriceExclVat float64 `json:"sell_price_excl_vat,omitempty"`
	SortOrder        int     `json:"sort_order"`
}

// BOMSnapshot is a point-in-time bill of materials derived from the
// configuration. Snapshots are append-only: regeneration always creates a new
// snapshot with an incremented number, never mutates an old one.

type BOMSnapshot struct {
	ID                  string     `json:"id"`
	SnapshotNumber      int        `json:"snapshot_number"`
	Trigger             BOMTrigger `json:"trigger"`
	Items               []BOMItem  `json:"items"`
	TotalCostExclVat    float64    `json:"total_cost_excl_vat"`
	TotalParts          int        `json:"total_parts"`
	EstimatedCostCount  int        `json:"estimated_cost_count"`
	EstimatedCostTotal  float64    `json:"estimated_cost_total"`
	ActualCostTotal     float64    `json:"actual_cost_total"`
	CostEstimationRatio float64    `json:"cost_estimation_ratio"`
	CreatedAt           time.Time  `json:"created_at"`
}

// EstimatedShare is the fraction of the snapshot cost that is estimated
// rather than actual. Callers compare it against the configured warn
// threshold; generation itself never fails on it.
func (s *BOMSnapshot) EstimatedShare() float64 {
	if s.TotalCostExclVat == 0 {
		return 0
	}
	return s.EstimatedCostTotal / s.TotalCostExclVat
}
