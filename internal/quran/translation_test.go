package quran

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
)

func testAyahs(texts ...string) []entities.Ayah {
	fatiha := &entities.SurahMeta{Number: 1, Name: "سُورَةُ ٱلْفَاتِحَةِ", NumberOfAyahs: 7}
	ayahs := make([]entities.Ayah, len(texts))
	for i, text := range texts {
		ayahs[i] = entities.Ayah{
			Number:        i + 1,
			NumberInSurah: i + 1,
			Text:          text,
			Surah:         fatiha,
			Juz:           1,
			Page:          1,
		}
	}
	return ayahs
}

func TestCombineWithTranslation_EqualLength(t *testing.T) {
	source := testAyahs("a1", "a2", "a3")
	translation := testAyahs("t1", "t2", "t3")

	combined := CombineWithTranslation(source, translation)

	require.Len(t, combined, len(source))
	for i := range combined {
		require.NotNil(t, combined[i].Translation)
		assert.Equal(t, translation[i].Text, *combined[i].Translation)

		withoutTranslation := combined[i]
		withoutTranslation.Translation = nil
		assert.Equal(t, source[i], withoutTranslation)
	}
}

func TestCombineWithTranslation_ShorterTranslation(t *testing.T) {
	source := testAyahs("a1", "a2", "a3")
	translation := testAyahs("t1")

	combined := CombineWithTranslation(source, translation)

	require.Len(t, combined, 3)
	assert.Equal(t, "t1", combined[0].TranslationText())
	for _, ayah := range combined[1:] {
		require.NotNil(t, ayah.Translation)
		assert.Equal(t, "", *ayah.Translation)
	}
}

func TestCombineWithTranslation_LongerTranslation(t *testing.T) {
	source := testAyahs("a1")
	translation := testAyahs("t1", "t2", "t3")

	combined := CombineWithTranslation(source, translation)

	require.Len(t, combined, 1)
	assert.Equal(t, "t1", combined[0].TranslationText())
}

func TestCombineWithTranslation_PairsByPositionOnly(t *testing.T) {
	source := testAyahs("a1", "a2")
	translation := testAyahs("t1", "t2")
	translation[0].NumberInSurah = 99

	combined := CombineWithTranslation(source, translation)

	assert.Equal(t, "t1", combined[0].TranslationText())
	assert.Equal(t, 1, combined[0].NumberInSurah)
}

func TestCombineWithTranslation_DoesNotModifyInputs(t *testing.T) {
	source := testAyahs("a1", "a2")
	translation := testAyahs("t1", "t2")

	_ = CombineWithTranslation(source, translation)

	for _, ayah := range source {
		assert.Nil(t, ayah.Translation)
	}
}

func TestCombineWithTranslation_Empty(t *testing.T) {
	assert.Empty(t, CombineWithTranslation(nil, testAyahs("t1")))
}
