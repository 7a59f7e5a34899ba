package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

func TestPaginateAyahs_ByCount(t *testing.T) {
	pages := paginateAyahs(testAyahs(1, 7), 3, false)

	require.Len(t, pages, 3)
	assert.Equal(t, []int{0, 3, 6}, []int{pages[0].Start, pages[1].Start, pages[2].Start})
	assert.Equal(t, []int{3, 6, 7}, []int{pages[0].End, pages[1].End, pages[2].End})
	assert.Contains(t, pages[2].Text, "arabic 7")
	assert.NotContains(t, pages[2].Text, "arabic 6")
}

func TestPaginateAyahs_ByLength(t *testing.T) {
	ayahs := testAyahs(2, 4)
	long := strings.Repeat("و", 1500)
	translation := strings.Repeat("a", 1500)
	for i := range ayahs {
		ayahs[i].Text = long
		ayahs[i].Translation = &translation
	}

	pages := paginateAyahs(ayahs, 10, false)

	require.Len(t, pages, 4)
	for _, page := range pages {
		assert.Equal(t, 1, page.End-page.Start)
	}
}

func TestPaginateAyahs_Empty(t *testing.T) {
	assert.Empty(t, paginateAyahs(nil, 10, false))
}

func TestFormatAyah(t *testing.T) {
	ayah := testAyahs(2, 1)[0]
	ayah.Text = "<b>"
	ayah.Sajda = entities.Sajda{Kind: entities.SajdaDetailed, ID: 1, Recommended: true}

	text := formatAyah(ayah, true)

	assert.True(t, strings.HasPrefix(text, lrm+"<b>2:1</b> · Al-Baqara ۩"))
	assert.Contains(t, text, "&lt;b&gt;")
	assert.Contains(t, text, "<i>translation 1</i>")
}

func TestFormatAyah_WithoutTranslation(t *testing.T) {
	ayah := testAyahs(2, 1)[0]
	ayah.Translation = nil

	assert.NotContains(t, formatAyah(ayah, false), "<i>")
}

func TestRenderSurahList(t *testing.T) {
	surahs := make([]entities.SurahMeta, quran.SurahCount)
	for i := range surahs {
		surahs[i] = entities.SurahMeta{Number: i + 1, EnglishName: "S"}
	}

	text, total := renderSurahList(surahs, 0)
	assert.Equal(t, 6, total)
	assert.Contains(t, text, "20. S")
	assert.NotContains(t, text, "21. S")

	text, _ = renderSurahList(surahs, 6)
	assert.Empty(t, text)
}

func TestRenderSearch_LimitsPreview(t *testing.T) {
	matches := testAyahs(2, 15)
	text := renderSearch("mercy", quran.SearchInSurah(2), &entities.SearchResult{Count: 15, Matches: matches})

	assert.Contains(t, text, "15 results for “mercy” in surah 2")
	assert.Contains(t, text, "2:10")
	assert.NotContains(t, text, "2:11")
	assert.Contains(t, text, "and 5 more")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "وو…", truncate("ووووو", 3))
}

func TestBuildPageKeyboard(t *testing.T) {
	assert.Nil(t, buildPageKeyboard(0, 1, "p", "n"))

	kb := buildPageKeyboard(1, 3, "p", "n")
	require.NotNil(t, kb)
	require.Len(t, kb.InlineKeyboard[0], 2)
	assert.Equal(t, "p", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "n", *kb.InlineKeyboard[0][1].CallbackData)
}

func TestBuildOptionsKeyboard_MarksCurrent(t *testing.T) {
	kb := buildOptionsKeyboard(settingsReciter, quran.Reciters(), quran.ReciterHusary)

	require.Len(t, kb.InlineKeyboard, len(quran.Reciters())+1)
	assert.Equal(t, "✅ Mahmoud Khalil Al-Husary", kb.InlineKeyboard[2][0].Text)
	assert.Equal(t, "settings:reciter:ar.husary", *kb.InlineKeyboard[2][0].CallbackData)
	assert.Equal(t, "settings:menu", *kb.InlineKeyboard[4][0].CallbackData)
}
