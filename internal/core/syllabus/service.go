package syllabus

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/pkg/pagination"
	"github.com/ductran/syllabase/pkg/slug"
	"github.com/ductran/syllabase/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the attributes for a new syllabus. UserID is always the
// gate-resolved requester, never client-supplied.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	CategoryID  string
	UserID      string
}

// ConcentrationInput holds the attributes for a new sub-topic.
type ConcentrationInput struct {
	Title       string
	Description string
	Keywords    []string
}

func (service *Service) List(ctx context.Context, params pagination.Params) ([]Syllabus, pagination.Meta, error) {
	syllabuses, total, err := service.repo.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return syllabuses, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get returns a syllabus with its concentrations and their keywords attached.
func (service *Service) Get(ctx context.Context, id string) (*Syllabus, error) {
	syllabusEntity, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	concentrations, err := service.repo.ListConcentrations(ctx, id)
	if err != nil {
		return nil, err
	}
	syllabusEntity.Concentrations = concentrations

	return syllabusEntity, nil
}

func (service *Service) Create(ctx context.Context, input CreateInput) (*Syllabus, error) {
	syllabusEntity := &Syllabus{
		ID:          uuidv7.New(),
		Title:       input.Title,
		Slug:        slug.From(input.Title),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		UserID:      input.UserID,
	}

	if err := service.repo.Create(ctx, syllabusEntity); err != nil {
		return nil, err
	}

	return syllabusEntity, nil
}

// Delete removes a syllabus. Only the owner may delete; everyone else gets a
// 403 regardless of authentication state.
func (service *Service) Delete(ctx context.Context, id, requesterID string) error {
	syllabusEntity, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if syllabusEntity.UserID != requesterID {
		// Worth a trace: either a buggy client or someone probing other
		// people's resources.
		service.logger.Warn("syllabus_delete_denied",
			slog.String("syllabus_id", id),
			slog.String("owner_id", syllabusEntity.UserID),
			slog.String("requester_id", requesterID),
		)
		return apperr.Forbidden("Only the owner can delete a syllabus")
	}

	return service.repo.Delete(ctx, id)
}

func (service *Service) Concentrations(ctx context.Context, syllabusID string) ([]Concentration, error) {
	// Resolve the parent first so a missing syllabus is a 404, not an empty list.
	if _, err := service.repo.GetByID(ctx, syllabusID); err != nil {
		return nil, err
	}

	return service.repo.ListConcentrations(ctx, syllabusID)
}

// AddConcentration creates a sub-topic under an existing syllabus, upserting
// its keyword words. Words are normalized to lowercase and deduplicated.
func (service *Service) AddConcentration(ctx context.Context, syllabusID string, input ConcentrationInput) (*Concentration, error) {
	if _, err := service.repo.GetByID(ctx, syllabusID); err != nil {
		return nil, err
	}

	concentration := &Concentration{
		ID:          uuidv7.New(),
		SyllabusID:  syllabusID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := service.repo.CreateConcentration(ctx, concentration, normalizeWords(input.Keywords)); err != nil {
		return nil, err
	}

	return concentration, nil
}

// normalizeWords lowercases, trims, and deduplicates keyword words while
// preserving input order.
func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	normalized := make([]string, 0, len(words))

	for _, word := range words {
		w := strings.ToLower(strings.TrimSpace(word))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		normalized = append(normalized, w)
	}

	return normalized
}
