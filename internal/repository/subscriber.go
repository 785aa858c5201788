package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"vismify/internal/domain"
)

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrSubscriberExists   = errors.New("subscriber already exists")
)

type SubscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, language)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, sub.Email, sub.Language).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSubscriberExists
		}
		return err
	}
	return nil
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	query := `
		SELECT id, created_at, email, language
		FROM newsletter_subscribers
		WHERE email = $1
	`

	sub := &domain.Subscriber{}
	if err := r.db.GetContext(ctx, sub, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (r *SubscriberRepository) FindAll(ctx context.Context) ([]*domain.Subscriber, error) {
	query := `
		SELECT id, created_at, email, language
		FROM newsletter_subscribers
		ORDER BY created_at DESC
	`

	subs := []*domain.Subscriber{}
	if err := r.db.SelectContext(ctx, &subs, query); err != nil {
		return nil, err
	}
	return subs, nil
}
