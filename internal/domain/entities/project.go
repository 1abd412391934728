package entities

import (
	"math"
	"sort"
	"time"
)

// ProjectStatus is the lifecycle state of a build project.
//
// The graph is linear and forward-only; transition legality lives in the
// statusmachine package. Once a project reaches ORDER_CONFIRMED the
// configuration is frozen and direct edits are replaced by amendments.

type ProjectStatus string

const (
	StatusDraft            ProjectStatus = "DRAFT"
	StatusQuoted           ProjectStatus = "QUOTED"
	StatusOfferSent        ProjectStatus = "OFFER_SENT"
	StatusOrderConfirmed   ProjectStatus = "ORDER_CONFIRMED"
	StatusInProduction     ProjectStatus = "IN_PRODUCTION"
	StatusReadyForDelivery ProjectStatus = "READY_FOR_DELIVERY"
	StatusDelivered        ProjectStatus = "DELIVERED"
	StatusClosed           ProjectStatus = "CLOSED"
)

// ProjectType classifies the kind of work sold to the client.

type ProjectType string

const (
	ProjectTypeNewBuild    ProjectType = "NEW_BUILD"
	ProjectTypeRefit       ProjectType = "REFIT"
	ProjectTypeMaintenance ProjectType = "MAINTENANCE"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeNewBuild, ProjectTypeRefit, ProjectTypeMaintenance:
		return true
	}
	return false
}

// PropulsionType describes the drive configuration quoted for the hull.

type PropulsionType string

const (
	PropulsionInboardDiesel PropulsionType = "INBOARD_DIESEL"
	PropulsionOutboard      PropulsionType = "OUTBOARD"
	PropulsionElectric      PropulsionType = "ELECTRIC"
	PropulsionHybrid        PropulsionType = "HYBRID"
	PropulsionSail          PropulsionType = "SAIL"
	PropulsionNone          PropulsionType = "NONE"
)

// AuditUser identifies the acting user on quote/amendment mutations.
// Authentication is handled upstream; the core only stamps records.

type AuditUser struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// ConfigurationItem is one equipment/work line on the project configuration.
//
// LineTotalExclVat is always derived (quantity x unit price) and recomputed by
// Configuration.Recalculate; it is never hand-edited. UnitCostExclVat is the
// actual supplier cost when known; nil means the BOM falls back to estimation.

type ConfigurationItem struct {
	ID               string   `json:"id"`
	Description      string   `json:"description"`
	Quantity         float64  `json:"quantity"`
	Unit             string   `json:"unit"`
	UnitPriceExclVat float64  `json:"unit_price_excl_vat"`
	LineTotalExclVat float64  `json:"line_total_excl_vat"`
	UnitCostExclVat  *float64 `json:"unit_cost_excl_vat,omitempty"`
	IsIncluded       bool     `json:"is_included"`
	CERelevant       bool     `json:"ce_relevant"`
	SafetyCritical   bool     `json:"safety_critical"`
	SortOrder        int      `json:"sort_order"`
}

// Configuration is the priced equipment list owned by a project. Totals are a
// pure function of the items and the discount/VAT settings.

type Configuration struct {
	Items           []ConfigurationItem `json:"items"`
	SubtotalExclVat float64             `json:"subtotal_excl_vat"`
	DiscountPercent float64             `json:"discount_percent"`
	DiscountAmount  float64             `json:"discount_amount"`
	VatRate         float64             `json:"vat_rate"`
	VatAmount       float64             `json:"vat_amount"`
	TotalInclVat    float64             `json:"total_incl_vat"`
	PropulsionType  PropulsionType      `json:"propulsion_type"`
}

// Project is the aggregate root. Quotes, amendments, BOM snapshots and tasks
// are owned sequences; the client is referenced, not owned.
//
// Revision is an optimistic-concurrency token: the repository refuses an
// update whose revision does not match the stored one.

type Project struct {
	ID            string             `json:"id"`
	ProjectNumber string             `json:"project_number"`
	Title         string             `json:"title"`
	Type          ProjectType        `json:"type"`
	Status        ProjectStatus      `json:"status"`
	ClientID      string             `json:"client_id"`
	Configuration Configuration      `json:"configuration"`
	Quotes        []ProjectQuote     `json:"quotes"`
	Amendments    []ProjectAmendment `json:"amendments"`
	BOMSnapshots  []BOMSnapshot      `json:"bom_snapshots"`
	Tasks         []ProjectTask      `json:"tasks"`
	Revision      int64              `json:"revision"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	ArchivedAt    *time.Time         `json:"archived_at,omitempty"`
}

// RoundMoney rounds to whole cents. All derived money fields go through this
// so equality checks against stored totals are stable.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Recalculate derives every line total and the configuration aggregates from
// the items and discount/VAT settings. Excluded items keep their line total
// but do not count towards the subtotal.
func (c *Configuration) Recalculate() {
	subtotal := 0.0
	for i := range c.Items {
		it := &c.Items[i]
		it.LineTotalExclVat = RoundMoney(it.Quantity * it.UnitPriceExclVat)
		if it.IsIncluded {
			subtotal += it.LineTotalExclVat
		}
	}
	c.SubtotalExclVat = RoundMoney(subtotal)
	if c.DiscountPercent > 0 {
		c.DiscountAmount = RoundMoney(c.SubtotalExclVat * c.DiscountPercent / 100)
	}
	base := RoundMoney(c.SubtotalExclVat - c.DiscountAmount)
	c.VatAmount = RoundMoney(base * c.VatRate / 100)
	c.TotalInclVat = RoundMoney(base + c.VatAmount)
}

// NormalizeSortOrder sorts items by sort order (stable, so equal orders keep
// insertion order) and reassigns contiguous values 0..n-1.
func (c *Configuration) NormalizeSortOrder() {
	sort.SliceStable(c.Items, func(i, j int) bool {
		return c.Items[i].SortOrder < c.Items[j].SortOrder
	})
	for i := range c.Items {
		c.Items[i].SortOrder = i
	}
}

// Clone returns a deep copy; mutating the clone never touches the original.
func (c Configuration) Clone() Configuration {
	out := c
	out.Items = make([]ConfigurationItem, len(c.Items))
	copy(out.Items, c.Items)
	for i := range out.Items {
		if c.Items[i].UnitCostExclVat != nil {
			v := *c.Items[i].UnitCostExclVat
			out.Items[i].UnitCostExclVat = &v
		}
	}
	return out
}

// ItemIndex returns the index of the item with the given id, or -1.
func (c *Configuration) ItemIndex(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// IncludedItemCount counts items that participate in pricing and the BOM.
func (c *Configuration) IncludedItemCount() int {
	n := 0
	for i := range c.Items {
		if c.Items[i].IsIncluded {
			n++
		}
	}
	return n
}

// OpenQuote returns the quote currently in DRAFT or SENT, if any. The common
// flow allows at most one.
func (p *Project) OpenQuote() *ProjectQuote {
	for i := range p.Quotes {
		if p.Quotes[i].Status == QuoteStatusDraft || p.Quotes[i].Status == QuoteStatusSent {
			return &p.Quotes[i]
		}
	}
	return nil
}

// QuoteByID returns a pointer into the quotes slice, or nil.
func (p *Project) QuoteByID(id string) *ProjectQuote {
	for i := range p.Quotes {
		if p.Quotes[i].ID == id {
			return &p.Quotes[i]
		}
	}
	return nil
}

// TaskByID returns a pointer into the tasks slice, or nil.
func (p *Project) TaskByID(id string) *ProjectTask {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// NextAmendmentNumber yields the next per-project amendment number, starting
// at 1. Amendments are never deleted, so numbers are never reused.
func (p *Project) NextAmendmentNumber() int {
	max := 0
	for i := range p.Amendments {
		if p.Amendments[i].AmendmentNumber > max {
			max = p.Amendments[i].AmendmentNumber
		}
	}
	return max + 1
}

// NextSnapshotNumber yields the next per-project BOM snapshot number.
func (p *Project) NextSnapshotNumber() int {
	max := 0
	for i := range p.BOMSnapshots {
		if p.BOMSnapshots[i].SnapshotNumber > max {
			max = p.BOMSnapshots[i].SnapshotNumber
		}
	}
	return max + 1
}

// LatestBOMSnapshot returns the snapshot with the highest number, or nil.
// Older snapshots are retained but superseded for default display.
func (p *Project) LatestBOMSnapshot() *BOMSnapshot {
	var latest *BOMSnapshot
	for i := range p.BOMSnapshots {
		if latest == nil || p.BOMSnapshots[i].SnapshotNumber > latest.SnapshotNumber {
			latest = &p.BOMSnapshots[i]
		}
	}
	return latest
}
