package dto

import "github.com/KoheiTanihara/Gado-back/internal/feature/items/domain/entity"

// ItemResponse represents an item in the API response.
type ItemResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
}

// ItemResponseFromEntity converts a domain entity to its API projection.
func ItemResponseFromEntity(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		OwnerID:     i.OwnerID,
	}
}
