package models

import "time"

// Post is a blog entry. CreatedBy references the owning User and is set once
// at creation; no operation ever updates it.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"createdBy"`
	CreatedOn   time.Time `json:"createdOn"`
}
