package services

import (
	"github.com/google/uuid"

	"vismify/internal/api/ws"
	"vismify/internal/domain"
)

// ThemeNotifier delivers a message to every open connection of a visitor.
type ThemeNotifier interface {
	SendToVisitor(visitorID uuid.UUID, msg ws.Message) error
}

type ThemeUpdateData struct {
	Theme domain.Theme `json:"theme"`
}

// ThemeService is the single writer of a visitor's theme. Readers are
// the rendered pages and the visitor's websocket connections.
type ThemeService struct {
	notifier ThemeNotifier
	fallback domain.Theme
}

func NewThemeService(notifier ThemeNotifier, fallback domain.Theme) *ThemeService {
	return &ThemeService{
		notifier: notifier,
		fallback: domain.ParseTheme(string(fallback), domain.ThemeSystem),
	}
}

func (s *ThemeService) Resolve(stored string) domain.Theme {
	return domain.ParseTheme(stored, s.fallback)
}

// Change sets the requested theme, or toggles current when requested is
// empty, and pushes the result to the visitor's open connections.
func (s *ThemeService) Change(visitorID uuid.UUID, current domain.Theme, requested string) (domain.Theme, error) {
	next := current.Toggle()
	if requested != "" {
		next = domain.ParseTheme(requested, current)
	}

	if s.notifier == nil || visitorID == uuid.Nil {
		return next, nil
	}

	err := s.notifier.SendToVisitor(visitorID, ws.Message{
		Type: ws.TypeThemeUpdate,
		Data: ThemeUpdateData{Theme: next},
	})
	return next, err
}
