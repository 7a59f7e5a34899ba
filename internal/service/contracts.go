package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// QuranClient is the part of the scripture API client the services rely on.
type QuranClient interface {
	Editions() quran.Editions
	Surahs(ctx context.Context) ([]entities.SurahMeta, error)
	SurahWithTranslation(ctx context.Context, number int, translation string) (*entities.Surah, error)
	SurahWithAudio(ctx context.Context, number int, reciter string) (*entities.Surah, error)
	PageWithTranslation(ctx context.Context, number int, translation string) (*entities.Section, error)
	JuzWithTranslation(ctx context.Context, number int, translation string) (*entities.Section, error)
	AyahWithTranslation(ctx context.Context, ref string, translation string) (*entities.Ayah, error)
	Search(ctx context.Context, keyword string, scope quran.SearchScope, edition string) (*entities.SearchResult, error)
	Meta(ctx context.Context) (*entities.Meta, error)
	AudioURL(surah, ayah int, reciter string) string
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Deactivate(ctx context.Context, userID int64) error
}

type SettingsRepository interface {
	Create(ctx context.Context, settings *entities.UserSettings) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateTranslation(ctx context.Context, userID int64, edition string) error
	UpdateReciter(ctx context.Context, userID int64, reciter string) error
	ToggleDailyAyah(ctx context.Context, userID int64) (bool, error)
}

// SubscriberRepository lists daily ayah recipients page by page, ordered by
// user ID and starting after afterID.
type SubscriberRepository interface {
	ListDailySubscribers(ctx context.Context, limit int, afterID int64) ([]*entities.DailySubscriber, error)
}

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// TxRepositories binds the user and settings repositories to a transaction.
type TxRepositories func(tx pgx.Tx) (UserRepository, SettingsRepository)

// PreferencesProvider returns the stored settings of a user.
type PreferencesProvider interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
}

// DailyNotifier delivers the daily ayah to a chat.
type DailyNotifier interface {
	SendDailyAyah(chatID int64, payload entities.DailyAyahPayload) error
}
