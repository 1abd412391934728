package request

import "botenwerf/internal/usecase"

// AddItemRequest is the payload for a new configuration item. is_included
// defaults to true when omitted.
type AddItemRequest struct {
	Description      string   `json:"description" binding:"required"`
	Quantity         float64  `json:"quantity" binding:"required"`
	Unit             string   `json:"unit"`
	UnitPriceExclVat float64  `json:"unit_price_excl_vat"`
	UnitCostExclVat  *float64 `json:"unit_cost_excl_vat"`
	IsIncluded       *bool    `json:"is_included"`
	CERelevant       bool     `json:"ce_relevant"`
	SafetyCritical   bool     `json:"safety_critical"`
}

func (r AddItemRequest) ToInput() usecase.AddItemInput {
	return usecase.AddItemInput{
		Description:      r.Description,
		Quantity:         r.Quantity,
		Unit:             r.Unit,
		UnitPriceExclVat: r.UnitPriceExclVat,
		UnitCostExclVat:  r.UnitCostExclVat,
		IsIncluded:       r.IsIncluded,
		CERelevant:       r.CERelevant,
		SafetyCritical:   r.SafetyCritical,
	}
}

// UpdateItemRequest is a partial update; omitted fields are left untouched.
type UpdateItemRequest struct {
	Description      *string  `json:"description"`
	Quantity         *float64 `json:"quantity"`
	Unit             *string  `json:"unit"`
	UnitPriceExclVat *float64 `json:"unit_price_excl_vat"`
	UnitCostExclVat  *float64 `json:"unit_cost_excl_vat"`
	IsIncluded       *bool    `json:"is_included"`
	CERelevant       *bool    `json:"ce_relevant"`
	SafetyCritical   *bool    `json:"safety_critical"`
}

func (r UpdateItemRequest) ToInput() usecase.UpdateItemInput {
	return usecase.UpdateItemInput{
		Description:      r.Description,
		Quantity:         r.Quantity,
		Unit:             r.Unit,
		UnitPriceExclVat: r.UnitPriceExclVat,
		UnitCostExclVat:  r.UnitCostExclVat,
		IsIncluded:       r.IsIncluded,
		CERelevant:       r.CERelevant,
		SafetyCritical:   r.SafetyCritical,
	}
}

// MoveItemRequest moves an item one position up or down.
type MoveItemRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// UpdatePricingRequest adjusts discount and VAT settings.
type UpdatePricingRequest struct {
	DiscountPercent *float64 `json:"discount_percent"`
	DiscountAmount  *float64 `json:"discount_amount"`
	VatRate         *float64 `json:"vat_rate"`
}

func (r UpdatePricingRequest) ToInput() usecase.UpdatePricingInput {
	return usecase.UpdatePricingInput{
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
		VatRate:         r.VatRate,
	}
}
