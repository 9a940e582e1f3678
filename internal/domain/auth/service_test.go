package auth_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/auth"
	"github.com/ronaldorededigital/confin/internal/domain/tenant"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type fakeUserRepository struct {
	byEmail map[string]*user.User
	created *user.User
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	f.created = u
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) CountAll(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeUserRepository) CountByPlan(ctx context.Context, p user.Plan) (int64, error) {
	return 0, nil
}

type fakeTenantRepository struct {
	created *tenant.Tenant
}

func (f *fakeTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	f.created = t
	return nil
}

func (f *fakeTenantRepository) GetByID(ctx context.Context, id ulid.ULID) (*tenant.Tenant, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepository) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*tenant.Tenant, int64, error) {
	return nil, 0, nil
}

type fakeOAuthProvider struct {
	info *auth.OAuthUserInfo
	err  error
}

func (f *fakeOAuthProvider) VerifyToken(ctx context.Context, credential string) (*auth.OAuthUserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeOAuthProvider) GetAuthURL(state string) string { return "" }

func (f *fakeOAuthProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	return "", nil
}

func newAuthService(userRepo *fakeUserRepository, tenantRepo *fakeTenantRepository, provider auth.OAuthProvider) *auth.Service {
	return auth.NewService(user.NewService(userRepo), tenant.NewService(tenantRepo), provider)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func TestLoginWithValidCredentials(t *testing.T) {
	stored := &user.User{
		Id:       pkg.GenerateULIDObject(),
		Email:    "maria@example.com",
		Password: hashed(t, "Senha@123"),
	}
	userRepo := &fakeUserRepository{byEmail: map[string]*user.User{stored.Email: stored}}
	service := newAuthService(userRepo, &fakeTenantRepository{}, nil)

	entity, err := service.Login(context.Background(), auth.Login{Email: "maria@example.com", Password: "Senha@123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Id != stored.Id {
		t.Error("expected the stored user to be returned")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	stored := &user.User{
		Email:    "maria@example.com",
		Password: hashed(t, "Senha@123"),
	}
	userRepo := &fakeUserRepository{byEmail: map[string]*user.User{stored.Email: stored}}
	service := newAuthService(userRepo, &fakeTenantRepository{}, nil)

	_, err := service.Login(context.Background(), auth.Login{Email: "maria@example.com", Password: "errada"})
	if err != appErrors.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmailHidesExistence(t *testing.T) {
	service := newAuthService(&fakeUserRepository{}, &fakeTenantRepository{}, nil)

	_, err := service.Login(context.Background(), auth.Login{Email: "nobody@example.com", Password: "Senha@123"})
	if err != appErrors.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterCreatesTenantAndAdminUser(t *testing.T) {
	userRepo := &fakeUserRepository{}
	tenantRepo := &fakeTenantRepository{}
	service := newAuthService(userRepo, tenantRepo, nil)

	created, err := service.Register(context.Background(), auth.Register{
		Name:       "Maria Silva",
		Email:      "maria@example.com",
		Password:   "Senha@123",
		TenantName: "Família Silva",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenantRepo.created == nil || tenantRepo.created.Name != "Família Silva" {
		t.Fatalf("expected tenant to be created, got %+v", tenantRepo.created)
	}
	if created.TenantId != tenantRepo.created.Id {
		t.Error("expected the user to belong to the new tenant")
	}
	if created.Role != user.RoleTenantAdmin {
		t.Errorf("expected tenant_admin role, got %s", created.Role)
	}
	if created.Password == "Senha@123" {
		t.Error("expected the password to be hashed")
	}
}

func TestRegisterDefaultsTenantNameToUserName(t *testing.T) {
	tenantRepo := &fakeTenantRepository{}
	service := newAuthService(&fakeUserRepository{}, tenantRepo, nil)

	_, err := service.Register(context.Background(), auth.Register{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "Senha@123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenantRepo.created.Name != "Maria Silva" {
		t.Errorf("expected tenant named after user, got %q", tenantRepo.created.Name)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	stored := &user.User{Email: "maria@example.com"}
	userRepo := &fakeUserRepository{byEmail: map[string]*user.User{stored.Email: stored}}
	service := newAuthService(userRepo, &fakeTenantRepository{}, nil)

	_, err := service.Register(context.Background(), auth.Register{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "Senha@123",
	})
	if err != appErrors.ErrEmailAlreadyExists {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestPasswordRequirements(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Senha@123", false},
		{"too short", "S@1a", true},
		{"no uppercase", "senha@123", true},
		{"no special char", "Senha1234", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.PasswordRequirements(tc.password)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %q", tc.password)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tc.password, err)
			}
		})
	}
}

func TestGoogleLoginProvisionsFirstTimeUser(t *testing.T) {
	provider := &fakeOAuthProvider{
		info: &auth.OAuthUserInfo{Email: "nova@example.com", Name: "Nova Usuária"},
	}
	userRepo := &fakeUserRepository{}
	tenantRepo := &fakeTenantRepository{}
	service := newAuthService(userRepo, tenantRepo, provider)

	created, err := service.GoogleLogin(context.Background(), "credential")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenantRepo.created == nil {
		t.Fatal("expected a tenant to be provisioned")
	}
	if created.Email != "nova@example.com" {
		t.Errorf("unexpected email: %q", created.Email)
	}
	if created.Role != user.RoleTenantAdmin {
		t.Errorf("expected tenant_admin role, got %s", created.Role)
	}
}

func TestGoogleLoginExistingUser(t *testing.T) {
	stored := &user.User{Id: pkg.GenerateULIDObject(), Email: "maria@example.com"}
	provider := &fakeOAuthProvider{
		info: &auth.OAuthUserInfo{Email: "maria@example.com", Name: "Maria"},
	}
	userRepo := &fakeUserRepository{byEmail: map[string]*user.User{stored.Email: stored}}
	tenantRepo := &fakeTenantRepository{}
	service := newAuthService(userRepo, tenantRepo, provider)

	entity, err := service.GoogleLogin(context.Background(), "credential")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Id != stored.Id {
		t.Error("expected the stored user")
	}
	if tenantRepo.created != nil {
		t.Error("expected no new tenant for an existing user")
	}
}

func TestGoogleLoginWithoutProvider(t *testing.T) {
	service := newAuthService(&fakeUserRepository{}, &fakeTenantRepository{}, nil)

	_, err := service.GoogleLogin(context.Background(), "credential")
	if err == nil {
		t.Fatal("expected error when oauth is not configured")
	}
}
