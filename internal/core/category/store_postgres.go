package category

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ductran/syllabase/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]Category, error) {
	const query = `SELECT id, name, created_at FROM categories ORDER BY name ASC`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		c := Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories_rows")
	}

	return categories, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, category *Category) error {
	const query = `INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := repository.db.Exec(ctx, query, category.ID, category.Name, category.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}

	return nil
}
