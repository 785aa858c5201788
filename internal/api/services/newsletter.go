package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"vismify/internal/domain"
	"vismify/internal/metrics"
	"vismify/internal/repository"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidLanguage    = errors.New("invalid language")
	ErrAlreadySubscribed  = errors.New("already subscribed")
	ErrNewsletterInternal = errors.New("newsletter unavailable")
)

type SubscriberStore interface {
	Create(ctx context.Context, sub *domain.Subscriber) error
	FindAll(ctx context.Context) ([]*domain.Subscriber, error)
}

type SubscribeInput struct {
	Email    string `valid:"required,email,length(3|320)"`
	Language string `valid:"required,alpha,length(2|8)"`
}

type NewsletterService struct {
	store SubscriberStore
}

func NewNewsletterService(store SubscriberStore) *NewsletterService {
	return &NewsletterService{store: store}
}

func (s *NewsletterService) Subscribe(ctx context.Context, input SubscribeInput) (*domain.Subscriber, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Language = PrimaryLanguage(input.Language)
	if input.Language == "" {
		input.Language = "en"
	}

	if !govalidator.IsAlpha(input.Language) || len(input.Language) < 2 || len(input.Language) > 8 {
		metrics.NewsletterSignups.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidLanguage
	}
	if _, err := govalidator.ValidateStruct(input); err != nil {
		metrics.NewsletterSignups.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidEmail
	}

	sub := &domain.Subscriber{Email: input.Email, Language: input.Language}
	if err := s.store.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrSubscriberExists) {
			metrics.NewsletterSignups.WithLabelValues("duplicate").Inc()
			return nil, ErrAlreadySubscribed
		}
		metrics.NewsletterSignups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrNewsletterInternal, err)
	}

	metrics.NewsletterSignups.WithLabelValues("created").Inc()
	return sub, nil
}

// PrimaryLanguage lowercases a language tag and keeps its primary subtag,
// so "en-US" and "pt_BR" become "en" and "pt".
func PrimaryLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

func (s *NewsletterService) List(ctx context.Context) ([]*domain.Subscriber, error) {
	return s.store.FindAll(ctx)
}
