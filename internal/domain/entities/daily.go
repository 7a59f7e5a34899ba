package entities

// DailySubscriber is a user who opted in to the daily ayah.
type DailySubscriber struct {
	UserID             int64
	ChatID             int64
	TranslationEdition string
	Reciter            string
}

// DailyAyahPayload is what gets delivered to one subscriber.
type DailyAyahPayload struct {
	Ayah     Ayah
	AudioURL string
}
