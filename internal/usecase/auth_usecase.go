package usecase

import (
	"errors"
	"strings"

	"catalog_service/config"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a login attempt carries a wrong
// username or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUseCase interface {
	// Authenticate checks the static credential pair and returns the
	// shared token. The token is a constant, not a signed or expiring
	// artifact: every successful login issues the same value.
	Authenticate(username, password string) (string, error)
	// ValidateToken checks an Authorization header value against the
	// configured token. An optional "Bearer " prefix is stripped first.
	ValidateToken(token string) bool
}

type authUseCase struct {
	cfg *config.Config
	log *logrus.Logger
}

func NewAuthUseCase(cfg *config.Config, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		cfg: cfg,
		log: logger,
	}
}

func (uc *authUseCase) Authenticate(username, password string) (string, error) {
	if username != uc.cfg.AuthUsername {
		uc.log.Warnf("Use Case: Authentication failed - unknown username '%s'", username)
		return "", ErrInvalidCredentials
	}

	if uc.cfg.AuthPasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AuthPasswordHash), []byte(password)); err != nil {
			uc.log.Warnf("Use Case: Authentication failed - password mismatch for '%s'", username)
			return "", ErrInvalidCredentials
		}
	} else if password != uc.cfg.AuthPassword {
		uc.log.Warnf("Use Case: Authentication failed - password mismatch for '%s'", username)
		return "", ErrInvalidCredentials
	}

	uc.log.Infof("Use Case: Authentication successful for '%s'", username)
	return uc.cfg.AuthToken, nil
}

func (uc *authUseCase) ValidateToken(token string) bool {
	token = strings.TrimSpace(token)
	if after, ok := strings.CutPrefix(token, "Bearer "); ok {
		token = strings.TrimSpace(after)
	}
	return token != "" && token == uc.cfg.AuthToken
}
