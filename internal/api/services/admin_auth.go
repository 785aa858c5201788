package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminSubject  = "admin"
	adminTokenTTL = 12 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminDisabled      = errors.New("admin access disabled")
)

type AdminAuthService struct {
	passwordHash string
	jwtKey       string
	now          func() time.Time
}

func NewAdminAuthService(passwordHash, jwtKey string) *AdminAuthService {
	return &AdminAuthService{
		passwordHash: passwordHash,
		jwtKey:       jwtKey,
		now:          time.Now,
	}
}

// Enabled reports whether an admin password hash is configured.
func (s *AdminAuthService) Enabled() bool {
	return s != nil && s.passwordHash != ""
}

// IssueToken checks password against the configured bcrypt hash and
// returns a signed HS256 token for the admin subject.
func (s *AdminAuthService) IssueToken(password string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, ErrAdminDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(adminTokenTTL)
	claims := jwt.MapClaims{
		"sub": AdminSubject,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
