package entities

import "time"

// QuoteStatus is the lifecycle of a single quote version.
//
// DRAFT -> SENT -> ACCEPTED | REJECTED. A rejected or superseded quote is
// terminal for that version; a new version starts over in DRAFT.

type QuoteStatus string

const (
	QuoteStatusDraft      QuoteStatus = "DRAFT"
	QuoteStatusSent       QuoteStatus = "SENT"
	QuoteStatusAccepted   QuoteStatus = "ACCEPTED"
	QuoteStatusRejected   QuoteStatus = "REJECTED"
	QuoteStatusSuperseded QuoteStatus = "SUPERSEDED"
)

// Terminal reports whether this status can never change again.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusRejected || s == QuoteStatusSuperseded
}

// QuoteLine is an immutable snapshot of a configuration item at quote
// creation time. Later configuration edits never touch existing quotes.

type QuoteLine struct {
	Description      string  `json:"description"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	UnitPriceExclVat float64 `json:"unit_price_excl_vat"`
	LineTotalExclVat float64 `json:"line_total_excl_vat"`
	SortOrder        int     `json:"sort_order"`
}

// ProjectQuote is one version of the offer document attached to a project.
// Rejected and superseded versions persist for audit.

type ProjectQuote struct {
	ID              string      `json:"id"`
	QuoteNumber     string      `json:"quote_number"`
	Status          QuoteStatus `json:"status"`
	Lines           []QuoteLine `json:"lines"`
	SubtotalExclVat float64     `json:"subtotal_excl_vat"`
	DiscountAmount  float64     `json:"discount_amount"`
	VatRate         float64     `json:"vat_rate"`
	VatAmount       float64     `json:"vat_amount"`
	TotalInclVat    float64     `json:"total_incl_vat"`
	Terms           string      `json:"terms,omitempty"`
	ValidUntil      time.Time   `json:"valid_until"`
	CreatedBy       string      `json:"created_by"`
	UpdatedBy       string      `json:"updated_by,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
