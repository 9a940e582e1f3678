package auth

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/ronaldorededigital/confin/config"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
)

// GoogleOAuthProvider valida credenciais do Google Identity Services. O
// fluxo principal é o botão de login, que entrega o ID token direto; o
// fluxo de código com redirect só fica ativo quando client secret e
// redirect URL estão configurados.
type GoogleOAuthProvider struct {
	oauth    *oauth2.Config
	clientID string
}

func NewGoogleOAuthProvider(cfg config.GoogleOAuthConfig) (OAuthProvider, error) {
	if !cfg.Enabled {
		return nil, appErrors.NewAuthError("OAUTH_DISABLED", "OAuth do Google está desabilitado")
	}
	if cfg.ClientID == "" {
		return nil, appErrors.NewAuthError("OAUTH_CONFIG_MISSING", "GOOGLE_OAUTH_CLIENT_ID não configurado")
	}

	provider := &GoogleOAuthProvider{clientID: cfg.ClientID}
	if cfg.ClientSecret != "" && cfg.RedirectURL != "" {
		provider.oauth = &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		}
	}
	return provider, nil
}

func (g *GoogleOAuthProvider) GetAuthURL(state string) string {
	if g.oauth == nil {
		return ""
	}
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (g *GoogleOAuthProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	if g.oauth == nil {
		return "", appErrors.NewAuthError("OAUTH_CONFIG_INCOMPLETE", "Configuração OAuth incompleta para fluxo de código")
	}

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return "", appErrors.NewAuthError("TOKEN_EXCHANGE_FAILED", "Falha ao trocar código por token").WithError(err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", appErrors.NewAuthError("ID_TOKEN_MISSING", "ID token não encontrado na resposta")
	}
	return idToken, nil
}

func (g *GoogleOAuthProvider) VerifyToken(ctx context.Context, credential string) (*OAuthUserInfo, error) {
	payload, err := idtoken.Validate(ctx, credential, g.clientID)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token do Google inválido").WithError(err)
	}
	return userInfoFromClaims(payload.Claims)
}

// userInfoFromClaims extrai o perfil do payload já verificado. Só o email é
// obrigatório; nome e foto podem vir vazios.
func userInfoFromClaims(claims map[string]interface{}) (*OAuthUserInfo, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, appErrors.NewAuthError("EMAIL_MISSING", "Email não encontrado no token")
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &OAuthUserInfo{
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
