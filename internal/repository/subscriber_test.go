package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vismify/internal/domain"
	"vismify/internal/testutil"
)

func TestSubscriberRepository(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	repo := NewSubscriberRepository(testDB)

	email := fmt.Sprintf("s%d@example.com", time.Now().UnixNano())

	t.Run("create", func(t *testing.T) {
		sub := &domain.Subscriber{Email: email, Language: "en"}
		require.NoError(t, repo.Create(ctx, sub))
		assert.NotEqual(t, uuid.Nil, sub.ID)
		assert.False(t, sub.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Subscriber{Email: email, Language: "ar"})
		assert.ErrorIs(t, err, ErrSubscriberExists)
	})

	t.Run("find by email", func(t *testing.T) {
		sub, err := repo.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, "en", sub.Language)

		_, err = repo.FindByEmail(ctx, "missing-"+email)
		assert.ErrorIs(t, err, ErrSubscriberNotFound)
	})

	t.Run("find all", func(t *testing.T) {
		subs, err := repo.FindAll(ctx)
		require.NoError(t, err)
		found := false
		for _, s := range subs {
			if s.Email == email {
				found = true
			}
		}
		assert.True(t, found)
	})
}
