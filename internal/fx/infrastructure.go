package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/config"
	"github.com/ronaldorededigital/confin/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newTenantRepository,
		newTransactionRepository,
		newCategoryRepository,
		newTicketRepository,
		newResourceCounter,
		newGeminiClient,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newTenantRepository(db *gorm.DB) *infrastructure.TenantRepository {
	return &infrastructure.TenantRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newTicketRepository(db *gorm.DB) *infrastructure.TicketRepository {
	return &infrastructure.TicketRepository{DB: db}
}

func newResourceCounter(db *gorm.DB) *infrastructure.ResourceCounter {
	return &infrastructure.ResourceCounter{DB: db}
}

func newGeminiClient(cfg *config.Config) *infrastructure.GeminiClient {
	return infrastructure.NewGeminiClient(cfg)
}
