package request

import "botenwerf/internal/usecase"

// ClientRequest is the payload for creating or updating a client record.
type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	Notes string `json:"notes"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		City:  r.City,
		Notes: r.Notes,
	}
}
