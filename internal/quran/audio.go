package quran

import (
	"fmt"
	"strings"
)

const (
	audioBaseURL     = "https://cdn.islamic.network/quran/audio"
	audioBitrate     = 128
	reciterNamespace = "ar."
)

// AudioURL builds the CDN URL of one recited ayah without touching the
// network. The URL is not checked for existence. An empty reciter selects
// Mishary Alafasy.
func AudioURL(surah, ayah int, reciter string) string {
	if reciter == "" {
		reciter = ReciterAlafasy
	}
	folder := strings.TrimPrefix(reciter, reciterNamespace)
	return fmt.Sprintf("%s/%d/%s/%03d%03d.mp3", audioBaseURL, audioBitrate, folder, surah, ayah)
}

// AudioURL builds an audio URL using the client's default reciter when
// reciter is empty.
func (c *Client) AudioURL(surah, ayah int, reciter string) string {
	return AudioURL(surah, ayah, c.reciterOr(reciter))
}
