package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdanalmag/MakTab-platform/internal/infra/postgres/repository"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

func TestSettingsService_GetOrCreate(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, quran.Editions{Translation: quran.EditionGumi, Reciter: quran.ReciterHusary})

	settings, err := svc.GetOrCreate(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), settings.UserID)
	assert.Equal(t, quran.EditionGumi, settings.TranslationEdition)
	assert.Equal(t, quran.ReciterHusary, settings.Reciter)
	assert.True(t, settings.DailyAyah)
}

func TestSettingsService_UpdateTranslation(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, quran.DefaultEditions())
	_, err := svc.GetOrCreate(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTranslation(context.Background(), 1, quran.EditionGumi))
	assert.Equal(t, quran.EditionGumi, repo.settings[1].TranslationEdition)

	err = svc.UpdateTranslation(context.Background(), 1, "xx.unknown")
	assert.ErrorIs(t, err, ErrUnknownEdition)
	assert.Equal(t, quran.EditionGumi, repo.settings[1].TranslationEdition)
}

func TestSettingsService_UpdateReciter(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, quran.DefaultEditions())

	err := svc.UpdateReciter(context.Background(), 1, quran.ReciterHusary)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)

	_, err = svc.GetOrCreate(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateReciter(context.Background(), 1, quran.ReciterHusary))
	assert.Equal(t, quran.ReciterHusary, repo.settings[1].Reciter)

	assert.ErrorIs(t, svc.UpdateReciter(context.Background(), 1, quran.EditionAsad), ErrUnknownEdition)
}

func TestSettingsService_ToggleDailyAyah(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, quran.DefaultEditions())
	_, err := svc.GetOrCreate(context.Background(), 1)
	require.NoError(t, err)

	enabled, err := svc.ToggleDailyAyah(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = svc.ToggleDailyAyah(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, enabled)
}
