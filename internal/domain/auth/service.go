package auth

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ronaldorededigital/confin/internal/domain/tenant"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
)

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	TenantName string `json:"tenantName"`
}

type Service struct {
	Users    *user.Service
	Tenants  *tenant.Service
	Provider OAuthProvider
}

func NewService(users *user.Service, tenants *tenant.Service, provider OAuthProvider) *Service {
	return &Service{
		Users:    users,
		Tenants:  tenants,
		Provider: provider,
	}
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.Users.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

// Register cria o tenant do grupo e o primeiro usuário como tenant_admin.
// O nome do tenant cai para o nome do usuário quando não informado.
func (s *Service) Register(ctx context.Context, reg Register) (*user.User, error) {
	exists, err := s.emailExists(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, appErrors.ErrEmailAlreadyExists
	}
	if err := PasswordRequirements(reg.Password); err != nil {
		return nil, err
	}

	tenantName := strings.TrimSpace(reg.TenantName)
	if tenantName == "" {
		tenantName = reg.Name
	}

	t, err := s.Tenants.Create(ctx, tenantName)
	if err != nil {
		return nil, err
	}

	newUser := &user.User{
		TenantId: t.Id,
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     user.RoleTenantAdmin,
	}
	if err := s.Users.Create(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// GoogleLogin valida a credencial do Google e devolve o usuário,
// provisionando tenant e conta na primeira entrada.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.Provider == nil {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth não está configurado. Configure GOOGLE_OAUTH_CLIENT_ID e GOOGLE_OAUTH_ENABLED=true")
	}
	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Credencial do Google não fornecida")
	}

	info, err := s.Provider.VerifyToken(ctx, credential)
	if err != nil {
		return nil, err
	}

	entity, err := s.Users.GetByEmail(ctx, info.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return s.provisionOAuthUser(ctx, info)
		}
		return nil, err
	}
	return entity, nil
}

func (s *Service) provisionOAuthUser(ctx context.Context, info *OAuthUserInfo) (*user.User, error) {
	password, err := generateSecurePassword()
	if err != nil {
		return nil, err
	}

	name := info.Name
	if name == "" {
		name = "Usuário Google"
	}

	t, err := s.Tenants.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	newUser := &user.User{
		TenantId: t.Id,
		Name:     name,
		Email:    info.Email,
		Password: password,
		Role:     user.RoleTenantAdmin,
	}
	if err := s.Users.Create(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.Users.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		return false, appErrors.ErrInternalServer.WithError(err)
	}
	if appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, appErr
}

func PasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "deve conter no mínimo 8 caracteres")
	}
	hasUpper, _ := regexp.MatchString(`[A-Z]`, password)
	if !hasUpper {
		return appErrors.NewValidationError("password", "deve conter ao menos uma letra maiúscula")
	}
	hasSpecial, _ := regexp.MatchString(`[@$!%*?&]`, password)
	if !hasSpecial {
		return appErrors.NewValidationError("password", "deve conter ao menos um caractere especial (@$!%*?&)")
	}
	return nil
}

func PasswordValidate(inputPassword string, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "deve ser informado")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

func PasswordHashing(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return string(hash), nil
}
