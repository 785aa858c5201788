package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vismify/internal/domain"
	"vismify/internal/repository"
)

type memorySubscribers struct {
	byEmail map[string]*domain.Subscriber
	err     error
}

func newMemorySubscribers() *memorySubscribers {
	return &memorySubscribers{byEmail: map[string]*domain.Subscriber{}}
}

func (m *memorySubscribers) Create(ctx context.Context, sub *domain.Subscriber) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byEmail[sub.Email]; ok {
		return repository.ErrSubscriberExists
	}
	sub.ID = uuid.New()
	m.byEmail[sub.Email] = sub
	return nil
}

func (m *memorySubscribers) FindAll(ctx context.Context) ([]*domain.Subscriber, error) {
	out := make([]*domain.Subscriber, 0, len(m.byEmail))
	for _, sub := range m.byEmail {
		out = append(out, sub)
	}
	return out, nil
}

func TestPrimaryLanguage(t *testing.T) {
	cases := map[string]string{
		"en":         "en",
		" AR ":       "ar",
		"en-US":      "en",
		"pt_BR":      "pt",
		"zh-Hant-TW": "zh",
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, PrimaryLanguage(in), in)
	}
}

func TestNewsletterService_Subscribe(t *testing.T) {
	ctx := context.Background()
	store := newMemorySubscribers()
	service := NewNewsletterService(store)

	t.Run("normalizes and stores", func(t *testing.T) {
		sub, err := service.Subscribe(ctx, SubscribeInput{Email: "  Fatima@Example.COM "})
		require.NoError(t, err)
		assert.Equal(t, "fatima@example.com", sub.Email)
		assert.Equal(t, "en", sub.Language)
		assert.NotEqual(t, uuid.Nil, sub.ID)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := service.Subscribe(ctx, SubscribeInput{Email: "fatima@example.com", Language: "ar"})
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})

	t.Run("invalid email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "@example.com"} {
			_, err := service.Subscribe(ctx, SubscribeInput{Email: email})
			assert.ErrorIs(t, err, ErrInvalidEmail, email)
		}
	})

	t.Run("invalid language", func(t *testing.T) {
		for _, lang := range []string{"e1", "x", "klingonese"} {
			_, err := service.Subscribe(ctx, SubscribeInput{Email: "ahmed@example.com", Language: lang})
			assert.ErrorIs(t, err, ErrInvalidLanguage, lang)
		}
	})

	t.Run("regional tag keeps the primary subtag", func(t *testing.T) {
		sub, err := service.Subscribe(ctx, SubscribeInput{Email: "yusuf@example.com", Language: "en-US"})
		require.NoError(t, err)
		assert.Equal(t, "en", sub.Language)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := newMemorySubscribers()
		failing.err = errors.New("db down")
		_, err := NewNewsletterService(failing).Subscribe(ctx, SubscribeInput{Email: "ali@example.com"})
		assert.ErrorIs(t, err, ErrNewsletterInternal)
	})

	t.Run("list", func(t *testing.T) {
		subs, err := service.List(ctx)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})
}
