package entities

import (
	"time"
)

// UserSettings stores user-specific reading preferences.
type UserSettings struct {
	UserID             int64
	TranslationEdition string  // translation paired with the Arabic text, e.g. "en.asad"
	Reciter            string  // audio edition used for recitations, e.g. "ar.alafasy"
	DailyAyah          bool    // whether the user receives the daily ayah
	LanguageCode       *string // nullable, defines interface language ("en", "ha", "ar")
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUserSettings creates a new UserSettings instance with the given defaults.
func NewUserSettings(userID int64, translation, reciter string) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:             userID,
		TranslationEdition: translation,
		Reciter:            reciter,
		DailyAyah:          true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
