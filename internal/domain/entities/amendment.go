package entities

import "time"

// AmendmentType classifies why a frozen configuration was changed.

type AmendmentType string

const (
	AmendmentTypeClientRequest     AmendmentType = "CLIENT_REQUEST"
	AmendmentTypeEngineeringChange AmendmentType = "ENGINEERING_CHANGE"
	AmendmentTypeCostCorrection    AmendmentType = "COST_CORRECTION"
	AmendmentTypeOther             AmendmentType = "OTHER"
)

func (t AmendmentType) Valid() bool {
	switch t {
	case AmendmentTypeClientRequest, AmendmentTypeEngineeringChange,
		AmendmentTypeCostCorrection, AmendmentTypeOther:
		return true
	}
	return false
}

// ProjectAmendment is an immutable, priced record of a post-freeze
// configuration change. There is no update or delete operation; the record
// and the configuration change it describes are persisted atomically.
//
// Approval happens synchronously at request time: RequestedBy and ApprovedBy
// are both stamped from the acting user. No pending-approval state is
// modeled (see DESIGN.md).

type ProjectAmendment struct {
	ID                 string        `json:"id"`
	AmendmentNumber    int           `json:"amendment_number"`
	Type               AmendmentType `json:"type"`
	Reason             string        `json:"reason"`
	AffectedItems      []string      `json:"affected_items"`
	PriceImpactExclVat float64       `json:"price_impact_excl_vat"`
	RequestedBy        string        `json:"requested_by"`
	ApprovedBy         string        `json:"approved_by"`
	CreatedAt          time.Time     `json:"created_at"`
}
