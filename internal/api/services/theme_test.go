package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vismify/internal/api/ws"
	"vismify/internal/domain"
)

type recordingNotifier struct {
	sent []ws.Message
	to   []uuid.UUID
	err  error
}

func (n *recordingNotifier) SendToVisitor(visitorID uuid.UUID, msg ws.Message) error {
	n.to = append(n.to, visitorID)
	n.sent = append(n.sent, msg)
	return n.err
}

func TestThemeService_Resolve(t *testing.T) {
	service := NewThemeService(nil, domain.ThemeSystem)
	assert.Equal(t, domain.ThemeDark, service.Resolve("dark"))
	assert.Equal(t, domain.ThemeSystem, service.Resolve(""))
	assert.Equal(t, domain.ThemeSystem, service.Resolve("neon"))

	invalidFallback := NewThemeService(nil, domain.Theme("neon"))
	assert.Equal(t, domain.ThemeSystem, invalidFallback.Resolve(""))
}

func TestThemeService_Change(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewThemeService(notifier, domain.ThemeSystem)
	visitor := uuid.New()

	t.Run("toggle", func(t *testing.T) {
		next, err := service.Change(visitor, domain.ThemeDark, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeLight, next)
	})

	t.Run("explicit", func(t *testing.T) {
		next, err := service.Change(visitor, domain.ThemeLight, "system")
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeSystem, next)
	})

	t.Run("unknown keeps current", func(t *testing.T) {
		next, err := service.Change(visitor, domain.ThemeLight, "neon")
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeLight, next)
	})

	require.Len(t, notifier.sent, 3)
	assert.Equal(t, ws.TypeThemeUpdate, notifier.sent[0].Type)
	assert.Equal(t, ThemeUpdateData{Theme: domain.ThemeLight}, notifier.sent[0].Data)
	assert.Equal(t, visitor, notifier.to[0])

	t.Run("anonymous visitor is not notified", func(t *testing.T) {
		_, err := service.Change(uuid.Nil, domain.ThemeLight, "")
		require.NoError(t, err)
		assert.Len(t, notifier.sent, 3)
	})

	t.Run("notify failure still returns the theme", func(t *testing.T) {
		notifier.err = errors.New("broken pipe")
		next, err := service.Change(visitor, domain.ThemeLight, "")
		assert.Error(t, err)
		assert.Equal(t, domain.ThemeDark, next)
	})
}
