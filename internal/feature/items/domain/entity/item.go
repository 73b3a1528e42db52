// Package entity defines the domain models for the items feature.
package entity

import "time"

// Item represents a task record owned by a single user.
// Every operation on items is scoped to the owner; an item is never visible
// to or mutable by another user.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null;index" json:"title"`
	Description string    `gorm:"size:255" json:"description"`
	OwnerID     uint      `gorm:"index;not null" json:"owner_id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
