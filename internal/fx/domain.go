package fx

import (
	"go.uber.org/fx"

	"github.com/ronaldorededigital/confin/config"
	"github.com/ronaldorededigital/confin/internal/domain/admin"
	"github.com/ronaldorededigital/confin/internal/domain/auth"
	"github.com/ronaldorededigital/confin/internal/domain/category"
	"github.com/ronaldorededigital/confin/internal/domain/dashboard"
	"github.com/ronaldorededigital/confin/internal/domain/insight"
	"github.com/ronaldorededigital/confin/internal/domain/installment"
	"github.com/ronaldorededigital/confin/internal/domain/tenant"
	"github.com/ronaldorededigital/confin/internal/domain/ticket"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	"github.com/ronaldorededigital/confin/internal/infrastructure"
	"github.com/ronaldorededigital/confin/internal/logger"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newTenantService,
		newCategoryService,
		newTransactionService,
		newInstallmentService,
		newOAuthProvider,
		newAuthService,
		newInsightAdvisor,
		newDashboardService,
		newTicketService,
		newAdminService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newTenantService(repo *infrastructure.TenantRepository) *tenant.Service {
	return tenant.NewService(repo)
}

func newCategoryService(repo *infrastructure.CategoryRepository, cfg *config.Config) *category.Service {
	return category.NewService(repo, cfg)
}

func newTransactionService(repo *infrastructure.TransactionRepository) *transaction.Service {
	return transaction.NewService(repo)
}

func newInstallmentService(repo *infrastructure.TransactionRepository) *installment.Service {
	return installment.NewService(repo)
}

// newOAuthProvider devolve nil quando o Google OAuth está desabilitado; o
// service de auth responde OAUTH_NOT_CONFIGURED nesse caso.
func newOAuthProvider(cfg *config.Config) auth.OAuthProvider {
	if !cfg.GoogleOAuth.Enabled {
		logger.Info().Msg("Google OAuth desabilitado (GOOGLE_OAUTH_ENABLED não está definido como 'true')")
		return nil
	}

	provider, err := auth.NewGoogleOAuthProvider(cfg.GoogleOAuth)
	if err != nil {
		logger.Warn().Err(err).Msg("Google OAuth habilitado mas mal configurado; login social indisponível")
		return nil
	}
	return provider
}

func newAuthService(
	userSvc *user.Service,
	tenantSvc *tenant.Service,
	provider auth.OAuthProvider,
) *auth.Service {
	return auth.NewService(userSvc, tenantSvc, provider)
}

func newInsightAdvisor(gemini *infrastructure.GeminiClient) *insight.Advisor {
	return insight.NewAdvisor(gemini)
}

func newDashboardService(
	transactionSvc *transaction.Service,
	advisor *insight.Advisor,
) *dashboard.Service {
	return dashboard.NewService(transactionSvc, advisor)
}

func newTicketService(repo *infrastructure.TicketRepository) *ticket.Service {
	return ticket.NewService(repo)
}

func newAdminService(userSvc *user.Service, ticketSvc *ticket.Service) *admin.Service {
	return admin.NewService(userSvc, ticketSvc)
}
