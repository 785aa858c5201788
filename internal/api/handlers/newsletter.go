package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vismify/internal/api/dto"
	"vismify/internal/api/services"
	"vismify/internal/domain"
)

type NewsletterHandler struct {
	newsletter *services.NewsletterService
	log        *zap.Logger
}

func NewNewsletterHandler(newsletter *services.NewsletterService, log *zap.Logger) *NewsletterHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &NewsletterHandler{
		newsletter: newsletter,
		log:        log,
	}
}

type SubscribeRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email,max=320" example:"reader@example.com"`
	Language string `json:"language" form:"language" validate:"omitempty,alpha,max=8" example:"en"`
}

func (r *SubscribeRequest) trim() {
	r.Email = strings.TrimSpace(r.Email)
	r.Language = services.PrimaryLanguage(r.Language)
}

// invalidField names the first field that failed validation, for the
// client-facing error message.
func invalidField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Language" {
		return "invalid language"
	}
	return "invalid email"
}

// Newsletter status values reported back to the page after a form post.
const (
	NewsletterStatusOK      = "subscribed"
	NewsletterStatusInvalid = "invalid"
	NewsletterStatusExists  = "exists"
	NewsletterStatusError   = "error"
)

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Subscriber"
// @Success 201 {object} dto.Subscriber
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	req.trim()

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, invalidField(err))
	}

	sub, err := h.subscribe(c, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return ErrBadRequest(c, "invalid email")
		case errors.Is(err, services.ErrInvalidLanguage):
			return ErrBadRequest(c, "invalid language")
		case errors.Is(err, services.ErrAlreadySubscribed):
			return ErrConflict(c, "already subscribed")
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusCreated, dto.SubscriberFromDomain(sub))
}

// SubscribeForm handles the footer form and redirects back to it with a
// status the page renders inline.
func (h *NewsletterHandler) SubscribeForm(c echo.Context) error {
	var req SubscribeRequest
	status := NewsletterStatusOK

	if err := c.Bind(&req); err != nil {
		status = NewsletterStatusInvalid
	} else if req.trim(); c.Validate(&req) != nil {
		status = NewsletterStatusInvalid
	} else if _, err := h.subscribe(c, req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrInvalidLanguage):
			status = NewsletterStatusInvalid
		case errors.Is(err, services.ErrAlreadySubscribed):
			status = NewsletterStatusExists
		default:
			status = NewsletterStatusError
		}
	}

	return c.Redirect(http.StatusSeeOther, "/?newsletter="+url.QueryEscape(status)+"#newsletter")
}

func (h *NewsletterHandler) subscribe(c echo.Context, req SubscribeRequest) (*domain.Subscriber, error) {
	sub, err := h.newsletter.Subscribe(c.Request().Context(), services.SubscribeInput{
		Email:    req.Email,
		Language: req.Language,
	})
	if err != nil && !errors.Is(err, services.ErrInvalidEmail) && !errors.Is(err, services.ErrInvalidLanguage) &&
		!errors.Is(err, services.ErrAlreadySubscribed) {
		h.log.Error("newsletter subscribe failed", zap.Error(err))
	}
	return sub, err
}
