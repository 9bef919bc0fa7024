package database

import (
	"fmt"

	"github.com/rohannso/Quiz-backend/config"
	"github.com/rohannso/Quiz-backend/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the postgres connection. TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey, which the
// services map back to validation errors.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Database connection established")
	return db, nil
}

// Migrate creates the schema plus the unique indexes gorm tags cannot
// express. Quiz titles and question texts are unique case-insensitively,
// so the authoritative guards are functional indexes on LOWER(...); a
// concurrent check-then-insert loser gets gorm.ErrDuplicatedKey, which
// the services map back to the duplicate field message.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.AuthToken{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_quizzes_lower_title ON quizzes (LOWER(title))",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_questions_quiz_lower_text ON questions (quiz_id, LOWER(text))",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			log.Error().Err(err).Str("stmt", stmt).Msg("Database migration failed")
			return err
		}
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
