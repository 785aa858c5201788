package handlers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"vismify/internal/api/services"
	"vismify/internal/content"
	"vismify/internal/domain"
	"vismify/internal/repository"
)

type customValidator struct{ v *validator.Validate }

func (cv *customValidator) Validate(i interface{}) error { return cv.v.Struct(i) }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &customValidator{v: validator.New()}
	return e
}

func testSite(t *testing.T) *domain.SiteContent {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)
	return site
}

func newTestCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	return services.NewCatalogService(content.NewSource(testSite(t)), nil)
}

type failingSource struct{}

func (failingSource) ListTools(context.Context) ([]domain.Tool, error) {
	return nil, errors.New("source down")
}

type memSubscriberStore struct {
	mu   sync.Mutex
	subs []*domain.Subscriber
	err  error
}

func (m *memSubscriberStore) Create(_ context.Context, sub *domain.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	for _, existing := range m.subs {
		if strings.EqualFold(existing.Email, sub.Email) {
			return repository.ErrSubscriberExists
		}
	}
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now()
	m.subs = append(m.subs, sub)
	return nil
}

func (m *memSubscriberStore) FindAll(context.Context) ([]*domain.Subscriber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Subscriber, len(m.subs))
	copy(out, m.subs)
	return out, nil
}
