// Package dto defines data transfer objects for the items HTTP API.
package dto

// ItemReq represents the request body for creating or replacing an item.
type ItemReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}
