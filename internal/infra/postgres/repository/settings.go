package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository on top of a pool or a transaction.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create stores settings unless the user already has some.
func (r *SettingsRepository) Create(ctx context.Context, settings *entities.UserSettings) error {
	query := `
		INSERT INTO user_settings (
			user_id, translation_edition, reciter, daily_ayah,
			language_code, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		settings.UserID,
		settings.TranslationEdition,
		settings.Reciter,
		settings.DailyAyah,
		settings.LanguageCode,
		settings.CreatedAt,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, translation_edition, reciter, daily_ayah,
		       language_code, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var settings entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.TranslationEdition,
		&settings.Reciter,
		&settings.DailyAyah,
		&settings.LanguageCode,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// UpdateTranslation sets the translation edition paired with the Arabic text.
func (r *SettingsRepository) UpdateTranslation(ctx context.Context, userID int64, edition string) error {
	query := `
		UPDATE user_settings
		SET translation_edition = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, edition, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update translation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateReciter sets the audio edition.
func (r *SettingsRepository) UpdateReciter(ctx context.Context, userID int64, reciter string) error {
	query := `
		UPDATE user_settings
		SET reciter = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, reciter, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update reciter: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// ToggleDailyAyah flips the daily ayah subscription and returns the new value.
func (r *SettingsRepository) ToggleDailyAyah(ctx context.Context, userID int64) (bool, error) {
	query := `
		UPDATE user_settings
		SET daily_ayah = NOT daily_ayah, updated_at = $1
		WHERE user_id = $2
		RETURNING daily_ayah
	`

	var enabled bool
	err := r.db.QueryRow(ctx, query, time.Now(), userID).Scan(&enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrSettingsNotFound
		}
		return false, fmt.Errorf("toggle daily ayah: %w", err)
	}

	return enabled, nil
}
