package request

import (
	"time"

	"botenwerf/internal/usecase"
)

// CreateQuoteRequest carries the optional terms for a new quote draft.
type CreateQuoteRequest struct {
	ValidUntil *time.Time `json:"valid_until"`
	Terms      string     `json:"terms"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		ValidUntil: r.ValidUntil,
		Terms:      r.Terms,
	}
}

// UpdateQuoteRequest is a partial draft update.
type UpdateQuoteRequest struct {
	ValidUntil *time.Time `json:"valid_until"`
	Terms      *string    `json:"terms"`
}

func (r UpdateQuoteRequest) ToInput() usecase.UpdateQuoteInput {
	return usecase.UpdateQuoteInput{
		ValidUntil: r.ValidUntil,
		Terms:      r.Terms,
	}
}
