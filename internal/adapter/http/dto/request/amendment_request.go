package request

import (
	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase"
)

// AmendmentItemUpdateRequest addresses one existing item with a partial
// update.
type AmendmentItemUpdateRequest struct {
	ItemID  string            `json:"item_id" binding:"required"`
	Updates UpdateItemRequest `json:"updates"`
}

// AmendmentRequest is the payload for POST /projects/:id/amendments. At least
// one change list must be non-empty.
type AmendmentRequest struct {
	Type          string                       `json:"type" binding:"required"`
	Reason        string                       `json:"reason" binding:"required"`
	ItemsToAdd    []AddItemRequest             `json:"items_to_add"`
	ItemsToRemove []string                     `json:"items_to_remove"`
	ItemsToUpdate []AmendmentItemUpdateRequest `json:"items_to_update"`
}

func (r AmendmentRequest) ToType() entities.AmendmentType {
	return entities.AmendmentType(r.Type)
}

func (r AmendmentRequest) ToChanges() usecase.AmendmentChanges {
	changes := usecase.AmendmentChanges{
		ItemsToRemove: r.ItemsToRemove,
	}
	for _, add := range r.ItemsToAdd {
		changes.ItemsToAdd = append(changes.ItemsToAdd, add.ToInput())
	}
	for _, upd := range r.ItemsToUpdate {
		changes.ItemsToUpdate = append(changes.ItemsToUpdate, usecase.AmendmentItemUpdate{
			ItemID:  upd.ItemID,
			Updates: upd.Updates.ToInput(),
		})
	}
	return changes
}
