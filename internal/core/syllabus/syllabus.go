package syllabus

import "time"

// Syllabus is a course outline owned by a user and filed under a category.
type Syllabus struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  string    `json:"category_id"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Concentrations holds the child sub-topics, populated on detail reads.
	Concentrations []Concentration `json:"concentrations,omitempty"`
}

// Concentration is a focused sub-topic inside a syllabus, tagged with keywords.
type Concentration struct {
	ID          string    `json:"id"`
	SyllabusID  string    `json:"syllabus_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Keywords []Keyword `json:"keywords"`
}

// Keyword is a globally deduplicated tag word attached to concentrations
// through a join table.
type Keyword struct {
	ID   string `json:"id"`
	Word string `json:"word"`
}
