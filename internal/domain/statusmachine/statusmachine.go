package statusmachine

import (
	"fmt"

	"botenwerf/internal/domain/entities"
)

// The project status graph is a fixed forward-only chain. There are no
// back-edges: an order cannot be un-confirmed through this API.
var chain = []entities.ProjectStatus{
	entities.StatusDraft,
	entities.StatusQuoted,
	entities.StatusOfferSent,
	entities.StatusOrderConfirmed,
	entities.StatusInProduction,
	entities.StatusReadyForDelivery,
	entities.StatusDelivered,
	entities.StatusClosed,
}

func rank(s entities.ProjectStatus) int {
	for i, st := range chain {
		if st == s {
			return i
		}
	}
	return -1
}

// TransitionContext carries the project facts the guards need. Callers build
// it from the aggregate (see ContextFor) so validation stays a pure function.

type TransitionContext struct {
	HasQuoteDraft          bool
	HasQuoteSent           bool
	HasQuoteAccepted       bool
	ConfigurationItemCount int
}

// ContextFor derives the transition context from a project. The item count
// only considers included items; an all-excluded configuration cannot be
// quoted.
func ContextFor(p *entities.Project) TransitionContext {
	ctx := TransitionContext{
		ConfigurationItemCount: p.Configuration.IncludedItemCount(),
	}
	for i := range p.Quotes {
		switch p.Quotes[i].Status {
		case entities.QuoteStatusDraft:
			ctx.HasQuoteDraft = true
		case entities.QuoteStatusSent:
			ctx.HasQuoteSent = true
		case entities.QuoteStatusAccepted:
			ctx.HasQuoteAccepted = true
		}
	}
	return ctx
}

// MilestoneEffectType tags a side effect attached to a transition.

type MilestoneEffectType string

const (
	EffectConfigurationFreeze MilestoneEffectType = "CONFIGURATION_FREEZE"
	EffectBOMSnapshot         MilestoneEffectType = "BOM_SNAPSHOT"
)

// MilestoneEffect describes a side effect the caller must surface to the user
// for confirmation before committing the transition.

type MilestoneEffect struct {
	Type        MilestoneEffectType `json:"type"`
	Description string              `json:"description"`
}

// TransitionCheck is the result of validating one transition.

type TransitionCheck struct {
	IsValid          bool              `json:"is_valid"`
	Errors           []string          `json:"errors"`
	MilestoneEffects []MilestoneEffect `json:"milestone_effects"`
}

// ValidNextStatuses lists every status reachable in one hop from current, in
// graph order. The guards in ValidateTransition may still reject a listed
// target when its context requirements are not met.
func ValidNextStatuses(current entities.ProjectStatus) []entities.ProjectStatus {
	r := rank(current)
	if r < 0 || r+1 >= len(chain) {
		return nil
	}
	return []entities.ProjectStatus{chain[r+1]}
}

// ValidateTransition checks one hop against the graph and its guard rules.
// Milestone effects are attached whenever the target carries them, so the UI
// can show what committing will do even while a guard still fails.
func ValidateTransition(current, target entities.ProjectStatus, ctx TransitionContext) TransitionCheck {
	check := TransitionCheck{Errors: []string{}, MilestoneEffects: []MilestoneEffect{}}

	cr, tr := rank(current), rank(target)
	if cr < 0 {
		check.Errors = append(check.Errors, fmt.Sprintf("unknown status %q", current))
		return check
	}
	if tr < 0 {
		check.Errors = append(check.Errors, fmt.Sprintf("unknown status %q", target))
		return check
	}
	if tr != cr+1 {
		check.Errors = append(check.Errors, fmt.Sprintf("cannot transition from %s to %s", current, target))
		return check
	}

	switch target {
	case entities.StatusQuoted:
		if ctx.ConfigurationItemCount == 0 {
			check.Errors = append(check.Errors, "configuration has no items; add at least one item before quoting")
		}
	case entities.StatusOfferSent:
		if !ctx.HasQuoteSent {
			check.Errors = append(check.Errors, "no quote has been sent to the client")
		}
	case entities.StatusOrderConfirmed:
		if !ctx.HasQuoteAccepted {
			check.Errors = append(check.Errors, "order confirmation requires an accepted quote")
		}
		check.MilestoneEffects = append(check.MilestoneEffects, MilestoneEffect{
			Type:        EffectConfigurationFreeze,
			Description: "the configuration will be frozen; further changes require an amendment",
		})
	case entities.StatusInProduction:
		check.MilestoneEffects = append(check.MilestoneEffects, MilestoneEffect{
			Type:        EffectBOMSnapshot,
			Description: "a bill of materials snapshot will be generated from the current configuration",
		})
	}

	check.IsValid = len(check.Errors) == 0
	return check
}

// IsEditable reports whether the configuration may be edited directly.
func IsEditable(s entities.ProjectStatus) bool {
	switch s {
	case entities.StatusDraft, entities.StatusQuoted, entities.StatusOfferSent:
		return true
	}
	return false
}

// IsFrozen reports whether direct configuration edits are disallowed and
// changes must go through an amendment.
func IsFrozen(s entities.ProjectStatus) bool {
	r := rank(s)
	return r >= rank(entities.StatusOrderConfirmed)
}

// IsLocked reports whether even amendment requests are blocked.
func IsLocked(s entities.ProjectStatus) bool {
	return s == entities.StatusClosed
}

// StatusInfo is presentation metadata for a status.

type StatusInfo struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

var statusInfo = map[entities.ProjectStatus]StatusInfo{
	entities.StatusDraft:            {Label: "Draft", Color: "#6b7280", BgColor: "#f3f4f6"},
	entities.StatusQuoted:           {Label: "Quoted", Color: "#2563eb", BgColor: "#dbeafe"},
	entities.StatusOfferSent:        {Label: "Offer sent", Color: "#7c3aed", BgColor: "#ede9fe"},
	entities.StatusOrderConfirmed:   {Label: "Order confirmed", Color: "#d97706", BgColor: "#fef3c7"},
	entities.StatusInProduction:     {Label: "In production", Color: "#ea580c", BgColor: "#ffedd5"},
	entities.StatusReadyForDelivery: {Label: "Ready for delivery", Color: "#0891b2", BgColor: "#cffafe"},
	entities.StatusDelivered:        {Label: "Delivered", Color: "#16a34a", BgColor: "#dcfce7"},
	entities.StatusClosed:           {Label: "Closed", Color: "#374151", BgColor: "#e5e7eb"},
}

// Info returns presentation metadata for a status. Unknown statuses get the
// raw value as label so the UI never renders blanks.
func Info(s entities.ProjectStatus) StatusInfo {
	if info, ok := statusInfo[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s), Color: "#6b7280", BgColor: "#f3f4f6"}
}
