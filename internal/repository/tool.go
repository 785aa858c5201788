package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vismify/internal/domain"
)

type ToolRepository struct {
	db *sqlx.DB
}

func NewToolRepository(db *sqlx.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

type toolRow struct {
	domain.Tool
	Features pq.StringArray `db:"features"`
	Position int            `db:"position"`
}

// FindAll returns the catalog in its seeded order.
func (r *ToolRepository) FindAll(ctx context.Context) ([]domain.Tool, error) {
	query := `
		SELECT id, title, description, category, features, rating, users,
			is_new, is_premium, icon, gradient, position
		FROM tools
		ORDER BY position ASC, id ASC
	`

	var rows []toolRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select tools: %w", err)
	}

	tools := make([]domain.Tool, 0, len(rows))
	for _, row := range rows {
		tool := row.Tool
		tool.Features = []string(row.Features)
		tools = append(tools, tool)
	}
	return tools, nil
}

// ListTools lets the table act as a catalog source.
func (r *ToolRepository) ListTools(ctx context.Context) ([]domain.Tool, error) {
	return r.FindAll(ctx)
}

func (r *ToolRepository) Upsert(ctx context.Context, tool domain.Tool, position int) error {
	query := `
		INSERT INTO tools (id, title, description, category, features, rating, users,
			is_new, is_premium, icon, gradient, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			features = EXCLUDED.features,
			rating = EXCLUDED.rating,
			users = EXCLUDED.users,
			is_new = EXCLUDED.is_new,
			is_premium = EXCLUDED.is_premium,
			icon = EXCLUDED.icon,
			gradient = EXCLUDED.gradient,
			position = EXCLUDED.position
	`

	_, err := r.db.ExecContext(ctx, query,
		tool.ID, tool.Title, tool.Description, string(tool.Category), pq.Array(tool.Features),
		tool.Rating, tool.Users, tool.IsNew, tool.IsPremium, tool.Icon, tool.Gradient, position,
	)
	if err != nil {
		return fmt.Errorf("upsert tool %d: %w", tool.ID, err)
	}
	return nil
}
