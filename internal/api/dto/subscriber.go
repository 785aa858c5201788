package dto

import (
	"time"

	"vismify/internal/domain"
)

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}

func SubscriberFromDomain(sub *domain.Subscriber) *Subscriber {
	if sub == nil {
		return nil
	}
	return &Subscriber{
		ID:        sub.ID.String(),
		Email:     sub.Email,
		Language:  sub.Language,
		CreatedAt: sub.CreatedAt,
	}
}

func SubscribersFromDomain(subs []*domain.Subscriber) []*Subscriber {
	out := make([]*Subscriber, 0, len(subs))
	for _, sub := range subs {
		out = append(out, SubscriberFromDomain(sub))
	}
	return out
}
