package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// ErrRecipientUnavailable is returned by a DailyNotifier when the chat
// can no longer receive messages.
var ErrRecipientUnavailable = errors.New("recipient unavailable")

const (
	dailyBatchSize        = 100
	defaultDailySchedule  = "0 6 * * *"
	defaultMaxConcurrency = 10
)

// DailyAyahConfig tunes the daily broadcast.
type DailyAyahConfig struct {
	Schedule      string // cron spec evaluated in UTC
	MaxConcurrent int
}

// DailyAyahService sends one random ayah a day to every subscriber.
type DailyAyahService struct {
	client      QuranClient
	subscribers SubscriberRepository
	users       *UserService
	notifier    DailyNotifier
	cfg         DailyAyahConfig
	logger      *zap.Logger
	intn        func(n int) int
}

// NewDailyAyahService creates a new daily ayah service.
func NewDailyAyahService(
	client QuranClient,
	subscribers SubscriberRepository,
	users *UserService,
	cfg DailyAyahConfig,
	logger *zap.Logger,
) *DailyAyahService {
	if cfg.Schedule == "" {
		cfg.Schedule = defaultDailySchedule
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultMaxConcurrency
	}

	return &DailyAyahService{
		client:      client,
		subscribers: subscribers,
		users:       users,
		cfg:         cfg,
		logger:      logger,
		intn:        rand.IntN,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *DailyAyahService) SetNotifier(notifier DailyNotifier) {
	s.notifier = notifier
}

// Start runs the cron scheduler until ctx is done.
func (s *DailyAyahService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.cfg.Schedule, func() {
		s.logger.Info("cron triggered: sending daily ayah")
		if _, err := s.SendDaily(ctx); err != nil {
			s.logger.Error("failed to send daily ayah", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}

	c.Start()
	s.logger.Info("daily ayah scheduler started", zap.String("schedule", s.cfg.Schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("daily ayah scheduler stopped")

	return nil
}

// SendDaily picks one ayah and delivers it to all subscribers.
// The ayah is fetched once per distinct translation edition.
func (s *DailyAyahService) SendDaily(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, errors.New("notifier not initialized")
	}

	ref := strconv.Itoa(s.intn(quran.AyahCount) + 1)
	ayahs := make(map[string]*entities.Ayah)
	var lastID int64
	totalSent := 0

	for {
		// Fetch subscribers in batches.
		batch, err := s.subscribers.ListDailySubscribers(ctx, dailyBatchSize, lastID)
		if err != nil {
			return totalSent, fmt.Errorf("list daily subscribers: %w", err)
		}

		if len(batch) == 0 {
			break
		}

		for _, sub := range batch {
			if _, ok := ayahs[sub.TranslationEdition]; ok {
				continue
			}
			ayah, err := s.client.AyahWithTranslation(ctx, ref, sub.TranslationEdition)
			if err != nil {
				// Subscribers of this edition are skipped today.
				s.logger.Error("failed to fetch daily ayah",
					zap.String("ref", ref),
					zap.String("edition", sub.TranslationEdition),
					zap.Error(err))
			}
			ayahs[sub.TranslationEdition] = ayah
		}

		totalSent += s.processBatch(ctx, batch, ayahs)

		if len(batch) < dailyBatchSize {
			break // Last batch
		}

		lastID = batch[len(batch)-1].UserID
	}

	s.logger.Info("daily ayah processed",
		zap.String("ref", ref),
		zap.Int("editions", len(ayahs)),
		zap.Int("total_sent", totalSent),
	)

	return totalSent, nil
}

// processBatch delivers a batch concurrently and returns how many sends succeeded.
func (s *DailyAyahService) processBatch(
	ctx context.Context,
	batch []*entities.DailySubscriber,
	ayahs map[string]*entities.Ayah,
) int {
	sem := make(chan struct{}, s.cfg.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, sub := range batch {
		if ayahs[sub.TranslationEdition] == nil {
			continue
		}

		wg.Add(1)
		sem <- struct{}{} // Acquire

		go func() {
			defer wg.Done()
			defer func() { <-sem }() // Release

			ayah := ayahs[sub.TranslationEdition]
			payload := entities.DailyAyahPayload{
				Ayah:     *ayah,
				AudioURL: s.audioURL(ayah, sub.Reciter),
			}

			if err := s.notifier.SendDailyAyah(sub.ChatID, payload); err != nil {
				s.handleSendError(ctx, sub, err)
				return
			}

			mu.Lock()
			sent++
			mu.Unlock()
		}()
	}

	wg.Wait()
	return sent
}

func (s *DailyAyahService) handleSendError(ctx context.Context, sub *entities.DailySubscriber, err error) {
	if !errors.Is(err, ErrRecipientUnavailable) {
		s.logger.Error("failed to send daily ayah",
			zap.Int64("user_id", sub.UserID),
			zap.Error(err))
		return
	}

	s.logger.Info("recipient unavailable, deactivating user", zap.Int64("user_id", sub.UserID))
	if err := s.users.Deactivate(ctx, sub.UserID); err != nil {
		s.logger.Error("failed to deactivate user",
			zap.Int64("user_id", sub.UserID),
			zap.Error(err))
	}
}

// audioURL is empty when the payload does not say which surah the ayah is in.
func (s *DailyAyahService) audioURL(ayah *entities.Ayah, reciter string) string {
	surah := ayah.SurahNumber()
	if surah == 0 {
		return ""
	}
	return s.client.AudioURL(surah, ayah.NumberInSurah, reciter)
}
