package infrastructure

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/config"
	"github.com/ronaldorededigital/confin/internal/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// runMigrations migra os modelos de linha dos repositórios, que são a
// fonte da verdade do schema; as entidades de domínio carregam tipos
// (ULID, Cents) que não vão direto para o banco.
func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	models := []interface{}{
		&tenantDB{},
		&userDB{},
		&transactionDB{},
		&categoryDB{},
		&ticketDB{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			logger.Error().
				Err(err).
				Str("table", model.(interface{ TableName() string }).TableName()).
				Msg("Erro ao migrar tabela")
			return err
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}
