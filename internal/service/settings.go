package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/infra/postgres/repository"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

var ErrUnknownEdition = errors.New("unknown edition")

type SettingsService struct {
	repository SettingsRepository
	defaults   quran.Editions
}

func NewSettingsService(repository SettingsRepository, defaults quran.Editions) *SettingsService {
	return &SettingsService{repository: repository, defaults: defaults}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			defaults := entities.NewUserSettings(userID, s.defaults.Translation, s.defaults.Reciter)
			if err := s.repository.Create(ctx, defaults); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

// UpdateTranslation accepts only editions offered in the settings menu.
func (s *SettingsService) UpdateTranslation(ctx context.Context, userID int64, edition string) error {
	if !offered(quran.Translations(), edition) {
		return fmt.Errorf("%w: %q", ErrUnknownEdition, edition)
	}
	return s.repository.UpdateTranslation(ctx, userID, edition)
}

// UpdateReciter accepts only reciters offered in the settings menu.
func (s *SettingsService) UpdateReciter(ctx context.Context, userID int64, reciter string) error {
	if !offered(quran.Reciters(), reciter) {
		return fmt.Errorf("%w: %q", ErrUnknownEdition, reciter)
	}
	return s.repository.UpdateReciter(ctx, userID, reciter)
}

func (s *SettingsService) ToggleDailyAyah(ctx context.Context, userID int64) (bool, error) {
	return s.repository.ToggleDailyAyah(ctx, userID)
}

func offered(options []quran.EditionOption, id string) bool {
	for _, opt := range options {
		if opt.ID == id {
			return true
		}
	}
	return false
}
