package category

import "time"

// Category is a top-level grouping for syllabuses (e.g. "Art", "Tech").
//
// Categories are seed data in practice: created rarely, read on almost every
// catalogue page. That read profile is why the list is cached in Redis.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
