package syllabus

import "context"

type Repository interface {
	// List returns one page of syllabuses plus the total row count.
	List(ctx context.Context, limit, offset int) ([]Syllabus, int, error)
	GetByID(ctx context.Context, id string) (*Syllabus, error)
	Create(ctx context.Context, syllabus *Syllabus) error
	Delete(ctx context.Context, id string) error

	ListConcentrations(ctx context.Context, syllabusID string) ([]Concentration, error)
	// CreateConcentration persists the concentration and upserts its keyword
	// words atomically.
	CreateConcentration(ctx context.Context, concentration *Concentration, words []string) error
}
