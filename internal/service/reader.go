package service

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// ReaderService serves scripture content in the editions a user picked.
type ReaderService struct {
	client      QuranClient
	preferences PreferencesProvider
	logger      *zap.Logger
	intn        func(n int) int
}

func NewReaderService(client QuranClient, preferences PreferencesProvider, logger *zap.Logger) *ReaderService {
	return &ReaderService{
		client:      client,
		preferences: preferences,
		logger:      logger,
		intn:        rand.IntN,
	}
}

// Surahs lists the metadata of every surah.
func (s *ReaderService) Surahs(ctx context.Context) ([]entities.SurahMeta, error) {
	return s.client.Surahs(ctx)
}

// Surah returns a surah with the user's translation attached.
func (s *ReaderService) Surah(ctx context.Context, userID int64, number int) (*entities.Surah, error) {
	editions := s.editionsFor(ctx, userID)
	return s.client.SurahWithTranslation(ctx, number, editions.Translation)
}

// SurahAudio returns a surah in the user's recitation, each ayah carrying its audio links.
func (s *ReaderService) SurahAudio(ctx context.Context, userID int64, number int) (*entities.Surah, error) {
	editions := s.editionsFor(ctx, userID)
	return s.client.SurahWithAudio(ctx, number, editions.Reciter)
}

// Page returns a mushaf page with the user's translation attached.
func (s *ReaderService) Page(ctx context.Context, userID int64, number int) (*entities.Section, error) {
	editions := s.editionsFor(ctx, userID)
	return s.client.PageWithTranslation(ctx, number, editions.Translation)
}

// Juz returns a juz with the user's translation attached.
func (s *ReaderService) Juz(ctx context.Context, userID int64, number int) (*entities.Section, error) {
	editions := s.editionsFor(ctx, userID)
	return s.client.JuzWithTranslation(ctx, number, editions.Translation)
}

// Ayah returns one ayah with the user's translation and the audio URL in the user's recitation.
func (s *ReaderService) Ayah(ctx context.Context, userID int64, ref string) (*entities.Ayah, string, error) {
	editions := s.editionsFor(ctx, userID)

	ayah, err := s.client.AyahWithTranslation(ctx, ref, editions.Translation)
	if err != nil {
		return nil, "", err
	}

	return ayah, s.audioURL(ayah, editions.Reciter), nil
}

// RandomAyah picks a uniformly random ayah.
func (s *ReaderService) RandomAyah(ctx context.Context, userID int64) (*entities.Ayah, string, error) {
	ordinal := s.intn(quran.AyahCount) + 1
	return s.Ayah(ctx, userID, strconv.Itoa(ordinal))
}

// AudioURL builds the recitation URL of a pair reference in the user's recitation.
func (s *ReaderService) AudioURL(ctx context.Context, userID int64, ref string) (string, error) {
	resolved, err := quran.ResolveAyahReference(ref)
	if err != nil {
		return "", err
	}
	if !resolved.IsPair() {
		return "", quran.ErrInvalidReference
	}

	editions := s.editionsFor(ctx, userID)
	return s.client.AudioURL(resolved.Surah, resolved.Ayah, editions.Reciter), nil
}

// Search looks a keyword up in the user's translation.
func (s *ReaderService) Search(ctx context.Context, userID int64, keyword string, scope quran.SearchScope) (*entities.SearchResult, error) {
	editions := s.editionsFor(ctx, userID)
	return s.client.Search(ctx, NormalizeKeyword(keyword), scope, editions.Translation)
}

// Meta returns corpus-wide statistics.
func (s *ReaderService) Meta(ctx context.Context) (*entities.Meta, error) {
	return s.client.Meta(ctx)
}

// editionsFor falls back to the client defaults when preferences cannot be loaded.
func (s *ReaderService) editionsFor(ctx context.Context, userID int64) quran.Editions {
	editions := s.client.Editions()

	settings, err := s.preferences.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load preferences, using defaults",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return editions
	}

	if settings.TranslationEdition != "" {
		editions.Translation = settings.TranslationEdition
	}
	if settings.Reciter != "" {
		editions.Reciter = settings.Reciter
	}

	return editions
}

func (s *ReaderService) audioURL(ayah *entities.Ayah, reciter string) string {
	surah := ayah.SurahNumber()
	if surah == 0 {
		return ""
	}
	return s.client.AudioURL(surah, ayah.NumberInSurah, reciter)
}

// NormalizeKeyword trims a search keyword and collapses inner whitespace.
func NormalizeKeyword(keyword string) string {
	return strings.Join(strings.Fields(keyword), " ")
}
