package syllabus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/platform/dberr"
	"github.com/ductran/syllabase/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context, limit, offset int) ([]Syllabus, int, error) {
	const countQuery = `SELECT COUNT(*) FROM syllabuses`
	const listQuery = `
		SELECT id, title, slug, description, image_url, category_id, user_id, created_at, updated_at
		FROM syllabuses
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_syllabuses")
	}

	rows, err := repository.db.Query(ctx, listQuery, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_syllabuses")
	}
	defer rows.Close()

	syllabuses := make([]Syllabus, 0, limit)
	for rows.Next() {
		s := Syllabus{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Description, &s.ImageURL,
			&s.CategoryID, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_syllabus")
		}
		syllabuses = append(syllabuses, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_syllabuses_rows")
	}

	return syllabuses, total, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Syllabus, error) {
	const query = `
		SELECT id, title, slug, description, image_url, category_id, user_id, created_at, updated_at
		FROM syllabuses
		WHERE id = $1`

	s := &Syllabus{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Slug, &s.Description, &s.ImageURL,
		&s.CategoryID, &s.UserID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Syllabus")
		}
		return nil, dberr.Wrap(err, "get_syllabus")
	}

	return s, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, syllabus *Syllabus) error {
	const query = `
		INSERT INTO syllabuses (
			id, title, slug, description, image_url, category_id, user_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	syllabus.CreatedAt = now
	syllabus.UpdatedAt = now

	_, err := repository.db.Exec(ctx, query,
		syllabus.ID, syllabus.Title, syllabus.Slug, syllabus.Description,
		syllabus.ImageURL, syllabus.CategoryID, syllabus.UserID,
		syllabus.CreatedAt, syllabus.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_syllabus")
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	// Concentrations and keyword links go with it via ON DELETE CASCADE.
	const query = `DELETE FROM syllabuses WHERE id = $1`

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_syllabus")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Syllabus")
	}

	return nil
}

func (repository *PostgresRepository) ListConcentrations(ctx context.Context, syllabusID string) ([]Concentration, error) {
	const cQuery = `
		SELECT id, syllabus_id, title, description, created_at
		FROM concentrations
		WHERE syllabus_id = $1
		ORDER BY created_at ASC`
	const kQuery = `
		SELECT ck.concentration_id, k.id, k.word
		FROM concentration_keywords ck
		JOIN keywords k ON k.id = ck.keyword_id
		JOIN concentrations c ON c.id = ck.concentration_id
		WHERE c.syllabus_id = $1
		ORDER BY k.word ASC`

	cRows, err := repository.db.Query(ctx, cQuery, syllabusID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_concentrations")
	}
	defer cRows.Close()

	concentrations := make([]Concentration, 0)
	index := make(map[string]int)

	for cRows.Next() {
		c := Concentration{Keywords: make([]Keyword, 0)}
		if err := cRows.Scan(&c.ID, &c.SyllabusID, &c.Title, &c.Description, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_concentration")
		}
		index[c.ID] = len(concentrations)
		concentrations = append(concentrations, c)
	}
	cRows.Close()
	if err := cRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_concentrations_rows")
	}

	kRows, err := repository.db.Query(ctx, kQuery, syllabusID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_concentration_keywords")
	}
	defer kRows.Close()

	for kRows.Next() {
		var concentrationID string
		k := Keyword{}
		if err := kRows.Scan(&concentrationID, &k.ID, &k.Word); err != nil {
			return nil, dberr.Wrap(err, "scan_keyword")
		}
		if i, ok := index[concentrationID]; ok {
			concentrations[i].Keywords = append(concentrations[i].Keywords, k)
		}
	}
	if err := kRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_concentration_keywords_rows")
	}

	return concentrations, nil
}

func (repository *PostgresRepository) CreateConcentration(ctx context.Context, concentration *Concentration, words []string) error {
	const cQuery = `
		INSERT INTO concentrations (id, syllabus_id, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	// Upsert keeps keyword words globally unique while always returning the id.
	const kQuery = `
		INSERT INTO keywords (id, word)
		VALUES ($1, $2)
		ON CONFLICT (word) DO UPDATE SET word = EXCLUDED.word
		RETURNING id`
	const linkQuery = `
		INSERT INTO concentration_keywords (concentration_id, keyword_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_concentration")
	}
	defer func() { _ = transaction.Rollback(ctx) }()

	concentration.CreatedAt = time.Now()
	if _, err := transaction.Exec(ctx, cQuery,
		concentration.ID, concentration.SyllabusID,
		concentration.Title, concentration.Description, concentration.CreatedAt,
	); err != nil {
		return dberr.Wrap(err, "create_concentration")
	}

	concentration.Keywords = make([]Keyword, 0, len(words))
	for _, word := range words {
		keyword := Keyword{Word: word}
		if err := transaction.QueryRow(ctx, kQuery, uuidv7.New(), word).Scan(&keyword.ID); err != nil {
			return dberr.Wrap(err, "upsert_keyword")
		}
		if _, err := transaction.Exec(ctx, linkQuery, concentration.ID, keyword.ID); err != nil {
			return dberr.Wrap(err, "link_keyword")
		}
		concentration.Keywords = append(concentration.Keywords, keyword)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit_create_concentration: %w", err)
	}

	return nil
}
