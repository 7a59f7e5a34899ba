package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/infra/postgres/repository"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

type fakeClient struct {
	mu           sync.Mutex
	editions     quran.Editions
	translations []string // translation editions requested, in call order
	refs         []string
	keywords     []string
	failEdition  string
	withoutSurah bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{editions: quran.DefaultEditions()}
}

func (c *fakeClient) record(translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations = append(c.translations, translation)
}

func (c *fakeClient) Editions() quran.Editions { return c.editions }

func (c *fakeClient) Surahs(context.Context) ([]entities.SurahMeta, error) {
	return []entities.SurahMeta{{Number: 1, EnglishName: "Al-Faatiha"}}, nil
}

func (c *fakeClient) SurahWithTranslation(_ context.Context, number int, translation string) (*entities.Surah, error) {
	c.record(translation)
	return &entities.Surah{SurahMeta: entities.SurahMeta{Number: number}}, nil
}

func (c *fakeClient) SurahWithAudio(_ context.Context, number int, reciter string) (*entities.Surah, error) {
	c.record(reciter)
	return &entities.Surah{SurahMeta: entities.SurahMeta{Number: number}}, nil
}

func (c *fakeClient) PageWithTranslation(_ context.Context, number int, translation string) (*entities.Section, error) {
	c.record(translation)
	return &entities.Section{Number: number}, nil
}

func (c *fakeClient) JuzWithTranslation(_ context.Context, number int, translation string) (*entities.Section, error) {
	c.record(translation)
	return &entities.Section{Number: number}, nil
}

func (c *fakeClient) AyahWithTranslation(_ context.Context, ref string, translation string) (*entities.Ayah, error) {
	c.record(translation)
	c.mu.Lock()
	c.refs = append(c.refs, ref)
	c.mu.Unlock()

	if translation == c.failEdition {
		return nil, fmt.Errorf("%w: edition", quran.ErrRemoteService)
	}

	number, err := strconv.Atoi(ref)
	if err != nil {
		number = 262
	}
	text := "translated by " + translation
	ayah := &entities.Ayah{
		Number:        number,
		NumberInSurah: 255,
		Surah:         &entities.SurahMeta{Number: 2},
		Translation:   &text,
	}
	if c.withoutSurah {
		ayah.Surah = nil
	}
	return ayah, nil
}

func (c *fakeClient) Search(_ context.Context, keyword string, _ quran.SearchScope, edition string) (*entities.SearchResult, error) {
	c.record(edition)
	c.keywords = append(c.keywords, keyword)
	return &entities.SearchResult{}, nil
}

func (c *fakeClient) Meta(context.Context) (*entities.Meta, error) {
	return &entities.Meta{}, nil
}

func (c *fakeClient) AudioURL(surah, ayah int, reciter string) string {
	return quran.AudioURL(surah, ayah, reciter)
}

type fakeSettingsRepo struct {
	settings map[int64]*entities.UserSettings
	getErr   error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[int64]*entities.UserSettings)}
}

func (r *fakeSettingsRepo) Create(_ context.Context, settings *entities.UserSettings) error {
	if _, ok := r.settings[settings.UserID]; !ok {
		copied := *settings
		r.settings[settings.UserID] = &copied
	}
	return nil
}

func (r *fakeSettingsRepo) GetByUserID(_ context.Context, userID int64) (*entities.UserSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	settings, ok := r.settings[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	copied := *settings
	return &copied, nil
}

func (r *fakeSettingsRepo) UpdateTranslation(_ context.Context, userID int64, edition string) error {
	settings, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	settings.TranslationEdition = edition
	return nil
}

func (r *fakeSettingsRepo) UpdateReciter(_ context.Context, userID int64, reciter string) error {
	settings, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	settings.Reciter = reciter
	return nil
}

func (r *fakeSettingsRepo) ToggleDailyAyah(_ context.Context, userID int64) (bool, error) {
	settings, ok := r.settings[userID]
	if !ok {
		return false, repository.ErrSettingsNotFound
	}
	settings.DailyAyah = !settings.DailyAyah
	return settings.DailyAyah, nil
}

type fakeUserRepo struct {
	mu          sync.Mutex
	users       map[int64]*entities.User
	deactivated []int64
	saveErr     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entities.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, user *entities.User) (bool, error) {
	if r.saveErr != nil {
		return false, r.saveErr
	}
	_, exists := r.users[user.ID]
	r.users[user.ID] = user
	return !exists, nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deactivated = append(r.deactivated, userID)
	return nil
}

func (r *fakeUserRepo) isDeactivated(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Contains(r.deactivated, userID)
}

type fakeTransactor struct {
	mu    sync.Mutex
	calls int
}

func (t *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return fn(ctx, nil)
}

func newTestUserService(users *fakeUserRepo, settings *fakeSettingsRepo) (*UserService, *fakeTransactor) {
	tr := &fakeTransactor{}
	repos := func(pgx.Tx) (UserRepository, SettingsRepository) { return users, settings }
	return NewUserService(tr, repos, quran.DefaultEditions()), tr
}

// fakeSubscribers mirrors the SQL: subscribers sorted by user ID, deactivated
// users filtered out.
type fakeSubscribers struct {
	subscribers []*entities.DailySubscriber
	users       *fakeUserRepo
	err         error
}

func (r *fakeSubscribers) ListDailySubscribers(_ context.Context, limit int, afterID int64) ([]*entities.DailySubscriber, error) {
	if r.err != nil {
		return nil, r.err
	}

	var page []*entities.DailySubscriber
	for _, sub := range r.subscribers {
		if len(page) == limit {
			break
		}
		if sub.UserID <= afterID {
			continue
		}
		if r.users != nil && r.users.isDeactivated(sub.UserID) {
			continue
		}
		page = append(page, sub)
	}
	return page, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	sent     map[int64]entities.DailyAyahPayload
	blocked  map[int64]bool
	failures map[int64]bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		sent:     make(map[int64]entities.DailyAyahPayload),
		blocked:  make(map[int64]bool),
		failures: make(map[int64]bool),
	}
}

func (n *fakeNotifier) SendDailyAyah(chatID int64, payload entities.DailyAyahPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.blocked[chatID] {
		return fmt.Errorf("send: %w", ErrRecipientUnavailable)
	}
	if n.failures[chatID] {
		return errors.New("telegram: too many requests")
	}
	n.sent[chatID] = payload
	return nil
}
