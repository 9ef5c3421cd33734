package models

import "time"

// Task belongs to exactly one user. OwnerID is set at creation and never
// changes; CreatorEmail is a denormalized copy of the owner's email taken at
// the same moment.
//
// CreatedAt and UpdatedAt are not managed by GORM: every mutating store call
// receives an explicit "now" and sets them itself.
type Task struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	OwnerID       uint       `gorm:"index;not null" json:"user"`
	CreatorEmail  string     `gorm:"not null" json:"creatorEmail"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Status        string     `gorm:"not null" json:"status"`
	Priority      string     `gorm:"not null" json:"priority"`
	DueDate       *time.Time `json:"dueDate"`
	AssigneeEmail string     `json:"assigneeEmail"`
	CreatedAt     time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
