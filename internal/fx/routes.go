package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/ronaldorededigital/confin/internal/domain/admin"
	"github.com/ronaldorededigital/confin/internal/domain/auth"
	"github.com/ronaldorededigital/confin/internal/domain/category"
	"github.com/ronaldorededigital/confin/internal/domain/dashboard"
	"github.com/ronaldorededigital/confin/internal/domain/installment"
	"github.com/ronaldorededigital/confin/internal/domain/ticket"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	"github.com/ronaldorededigital/confin/internal/middleware"
	"github.com/ronaldorededigital/confin/internal/routes"
)

// RoutesModule fornece o handler e o rate limiter das rotas públicas
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	jwtSvc *middleware.JwtService,
	authSvc *auth.Service,
	userSvc *user.Service,
	transactionSvc *transaction.Service,
	installmentSvc *installment.Service,
	categorySvc *category.Service,
	dashboardSvc *dashboard.Service,
	ticketSvc *ticket.Service,
	adminSvc *admin.Service,
) *routes.Handler {
	return &routes.Handler{
		JwtService:         jwtSvc,
		AuthService:        authSvc,
		UserService:        userSvc,
		TransactionService: transactionSvc,
		InstallmentService: installmentSvc,
		CategoryService:    categorySvc,
		DashboardService:   dashboardSvc,
		TicketService:      ticketSvc,
		AdminService:       adminSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
