package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	appErrors "github.com/ronaldorededigital/confin/internal/errors"
)

type OAuthUserInfo struct {
	Email   string
	Name    string
	Picture string
}

type OAuthProvider interface {
	VerifyToken(ctx context.Context, credential string) (*OAuthUserInfo, error)
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

func generateSecurePassword() (string, error) {
	const passwordLength = 32
	bytes := make([]byte, passwordLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

func GenerateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
