package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

const (
	surahsPerPage  = 20
	searchPreview  = 10
	pageTextBudget = 3500
	ayahTextBudget = 1700 // per text, so an ayah with its translation fits one message
)

// formatAyah renders one ayah: reference, Arabic text and translation if any.
func formatAyah(ayah entities.Ayah, withSurahName bool) string {
	var b strings.Builder

	b.WriteString(lrm)
	b.WriteString(bold(ayah.Ref()))
	if withSurahName && ayah.Surah != nil {
		b.WriteString(" · ")
		b.WriteString(esc(ayah.Surah.EnglishName))
	}
	if ayah.Sajda.Present() {
		b.WriteString(" ۩")
	}
	b.WriteString("\n")
	b.WriteString(esc(truncate(ayah.Text, ayahTextBudget)))

	if text := ayah.TranslationText(); text != "" {
		b.WriteString("\n")
		b.WriteString(italic(truncate(text, ayahTextBudget)))
	}

	return b.String()
}

// ayahPage is one message worth of ayahs.
type ayahPage struct {
	Start, End int // half-open range into the paginated slice
	Text       string
}

// paginateAyahs splits ayahs into message pages of at most perPage ayahs,
// starting a new page early when the text budget would be exceeded.
// Every page holds at least one ayah.
func paginateAyahs(ayahs []entities.Ayah, perPage int, withSurahName bool) []ayahPage {
	var (
		pages   []ayahPage
		current []string
		start   int
		size    int
	)

	flush := func(end int) {
		if len(current) > 0 {
			pages = append(pages, ayahPage{Start: start, End: end, Text: strings.Join(current, "\n\n")})
			current, start, size = nil, end, 0
		}
	}

	for i, ayah := range ayahs {
		text := formatAyah(ayah, withSurahName)
		length := len([]rune(text))

		if len(current) == perPage || (len(current) > 0 && size+length > pageTextBudget) {
			flush(i)
		}

		current = append(current, text)
		size += length + 2
	}
	flush(len(ayahs))

	return pages
}

func surahHeader(meta entities.SurahMeta) string {
	return fmt.Sprintf("%s %s · %s\n%s · %d ayahs\n\n",
		lrm+bold(fmt.Sprintf("%d. %s", meta.Number, meta.EnglishName)),
		esc(meta.Name),
		italic(meta.EnglishNameTranslation),
		esc(string(meta.RevelationType)),
		meta.NumberOfAyahs,
	)
}

func sectionHeader(kind string, section *entities.Section) string {
	title := "Page"
	if kind == kindJuz {
		title = "Juz"
	}

	names := make([]string, 0, len(section.Surahs))
	for _, number := range section.SurahNumbers() {
		names = append(names, section.Surahs[number].EnglishName)
	}

	return fmt.Sprintf("%s\n%s\n\n",
		bold(fmt.Sprintf("%s %d", title, section.Number)),
		esc(strings.Join(names, ", ")),
	)
}

func pageFooter(page, total int) string {
	if total <= 1 {
		return ""
	}
	return fmt.Sprintf("\n\n%s", italic(fmt.Sprintf("%d / %d", page+1, total)))
}

// renderSurahList renders one page of the surah list.
func renderSurahList(surahs []entities.SurahMeta, page int) (text string, totalPages int) {
	totalPages = (len(surahs) + surahsPerPage - 1) / surahsPerPage
	if totalPages == 0 || page < 0 || page >= totalPages {
		return "", totalPages
	}

	start := page * surahsPerPage
	end := min(start+surahsPerPage, len(surahs))

	var b strings.Builder
	b.WriteString(bold("Surahs"))
	b.WriteString("\n\n")
	for _, s := range surahs[start:end] {
		fmt.Fprintf(&b, "%s%d. %s (%d) %s\n", lrm, s.Number, esc(s.EnglishName), s.NumberOfAyahs, esc(s.Name))
	}
	b.WriteString("\nOpen one with /surah N")

	return b.String(), totalPages
}

// renderSearch renders the first matches of a search.
func renderSearch(keyword string, scope quran.SearchScope, result *entities.SearchResult) string {
	var b strings.Builder

	where := "the Quran"
	if scope != quran.SearchAll {
		where = "surah " + scope.String()
	}
	fmt.Fprintf(&b, "%s\n\n", bold(fmt.Sprintf("%d results for “%s” in %s", result.Count, keyword, where)))

	for i, match := range result.Matches {
		if i == searchPreview {
			fmt.Fprintf(&b, "%s", italic(fmt.Sprintf("…and %d more", result.Count-searchPreview)))
			break
		}
		fmt.Fprintf(&b, "%s %s\n\n", bold(match.Ref()), esc(truncate(match.Text, 300)))
	}

	return strings.TrimSpace(b.String())
}

// renderSettings renders the settings summary.
func renderSettings(settings *entities.UserSettings) string {
	return fmt.Sprintf(
		"%s\n\n🌐 Translation: %s\n🎙 Reciter: %s\n🔔 Daily ayah: %s",
		bold("⚙️ Settings"),
		esc(quran.EditionLabel(settings.TranslationEdition)),
		esc(quran.EditionLabel(settings.Reciter)),
		formatBool(settings.DailyAyah),
	)
}

// renderDailyAyah renders the daily ayah message.
func renderDailyAyah(payload entities.DailyAyahPayload) string {
	return bold("🌅 Ayah of the day") + "\n\n" + formatAyah(payload.Ayah, true)
}

func formatBool(b bool) string {
	if b {
		return "on ✅"
	}
	return "off ❌"
}

func audioCaption(ref string) string {
	return "Recitation of " + ref
}

func parseNumberArg(args string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	return n, err == nil
}
