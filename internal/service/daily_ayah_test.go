package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

func newTestDaily(t *testing.T, subs []*entities.DailySubscriber) (*DailyAyahService, *fakeClient, *fakeNotifier, *fakeUserRepo) {
	t.Helper()

	client := newFakeClient()
	users := newFakeUserRepo()
	userSvc, _ := newTestUserService(users, newFakeSettingsRepo())

	svc := NewDailyAyahService(client, &fakeSubscribers{subscribers: subs, users: users}, userSvc, DailyAyahConfig{MaxConcurrent: 2}, zaptest.NewLogger(t))
	svc.intn = func(int) int { return 261 }

	notifier := newFakeNotifier()
	svc.SetNotifier(notifier)

	return svc, client, notifier, users
}

func subscriber(id int64, translation, reciter string) *entities.DailySubscriber {
	return &entities.DailySubscriber{UserID: id, ChatID: id * 10, TranslationEdition: translation, Reciter: reciter}
}

func TestSendDaily_FetchesOncePerEdition(t *testing.T) {
	subs := []*entities.DailySubscriber{
		subscriber(1, quran.EditionAsad, quran.ReciterAlafasy),
		subscriber(2, quran.EditionGumi, quran.ReciterHusary),
		subscriber(3, quran.EditionAsad, quran.ReciterMinshawi),
	}
	svc, client, notifier, _ := newTestDaily(t, subs)

	sent, err := svc.SendDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, sent)
	assert.ElementsMatch(t, []string{quran.EditionAsad, quran.EditionGumi}, client.translations)
	assert.Equal(t, []string{"262", "262"}, client.refs)

	assert.Equal(t, "translated by ha.gumi", notifier.sent[20].Ayah.TranslationText())
	assert.Equal(t, "https://cdn.islamic.network/quran/audio/128/husary/002255.mp3", notifier.sent[20].AudioURL)
	assert.Equal(t, "https://cdn.islamic.network/quran/audio/128/minshawi/002255.mp3", notifier.sent[30].AudioURL)
}

func TestSendDaily_PagesThroughSubscribers(t *testing.T) {
	subs := make([]*entities.DailySubscriber, 0, dailyBatchSize+5)
	for i := range dailyBatchSize + 5 {
		subs = append(subs, subscriber(int64(i+1), quran.EditionAsad, quran.ReciterAlafasy))
	}
	svc, client, notifier, _ := newTestDaily(t, subs)

	sent, err := svc.SendDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dailyBatchSize+5, sent)
	assert.Len(t, notifier.sent, dailyBatchSize+5)
	assert.Len(t, client.translations, 1)
}

func TestSendDaily_DeactivationsDoNotSkipLaterPages(t *testing.T) {
	subs := make([]*entities.DailySubscriber, 0, dailyBatchSize+10)
	for i := range dailyBatchSize + 10 {
		subs = append(subs, subscriber(int64(i+1), quran.EditionAsad, quran.ReciterAlafasy))
	}
	svc, _, notifier, users := newTestDaily(t, subs)
	for id := int64(1); id <= 5; id++ {
		notifier.blocked[id*10] = true
	}

	sent, err := svc.SendDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dailyBatchSize+5, sent)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, users.deactivated)
	for id := int64(dailyBatchSize + 1); id <= dailyBatchSize+10; id++ {
		assert.Contains(t, notifier.sent, id*10)
	}
}

func TestSendDaily_NoAudioWithoutSurah(t *testing.T) {
	svc, client, notifier, _ := newTestDaily(t, []*entities.DailySubscriber{
		subscriber(1, quran.EditionAsad, quran.ReciterAlafasy),
	})
	client.withoutSurah = true

	sent, err := svc.SendDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Empty(t, notifier.sent[10].AudioURL)
}

func TestSendDaily_DeactivatesUnreachableUsers(t *testing.T) {
	subs := []*entities.DailySubscriber{
		subscriber(1, quran.EditionAsad, quran.ReciterAlafasy),
		subscriber(2, quran.EditionAsad, quran.ReciterAlafasy),
		subscriber(3, quran.EditionAsad, quran.ReciterAlafasy),
	}
	svc, _, notifier, users := newTestDaily(t, subs)
	notifier.blocked[20] = true
	notifier.failures[30] = true

	sent, err := svc.SendDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Equal(t, []int64{2}, users.deactivated)
}

func TestSendDaily_SkipsEditionThatFails(t *testing.T) {
	subs := []*entities.DailySubscriber{
		subscriber(1, quran.EditionAsad, quran.ReciterAlafasy),
		subscriber(2, "xx.broken", quran.ReciterAlafasy),
	}
	svc, client, notifier, _ := newTestDaily(t, subs)
	client.failEdition = "xx.broken"

	sent, err := svc.SendDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Contains(t, notifier.sent, int64(10))
	assert.NotContains(t, notifier.sent, int64(20))
}

func TestSendDaily_Errors(t *testing.T) {
	svc, _, _, _ := newTestDaily(t, nil)
	svc.subscribers = &fakeSubscribers{err: errors.New("db down")}

	_, err := svc.SendDaily(context.Background())
	assert.Error(t, err)

	svc.SetNotifier(nil)
	_, err = svc.SendDaily(context.Background())
	assert.Error(t, err)
}

func TestDailyAyahService_StartRejectsBadSchedule(t *testing.T) {
	svc, _, _, _ := newTestDaily(t, nil)
	svc.cfg.Schedule = "not a schedule"

	assert.Error(t, svc.Start(context.Background()))
}

func TestDailyAyahService_StartStopsWithContext(t *testing.T) {
	svc, _, _, _ := newTestDaily(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, svc.Start(ctx))
}
