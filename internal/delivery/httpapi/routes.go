package httpapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

// QuranClient is the subset of the scripture client served over HTTP.
type QuranClient interface {
	Editions() quran.Editions
	Surahs(ctx context.Context) ([]entities.SurahMeta, error)
	Surah(ctx context.Context, number int, edition string) (*entities.Surah, error)
	SurahWithTranslation(ctx context.Context, number int, translation string) (*entities.Surah, error)
	Page(ctx context.Context, number int, edition string) (*entities.Section, error)
	PageWithTranslation(ctx context.Context, number int, translation string) (*entities.Section, error)
	Juz(ctx context.Context, number int, edition string) (*entities.Section, error)
	JuzWithTranslation(ctx context.Context, number int, translation string) (*entities.Section, error)
	Ayah(ctx context.Context, ref string, edition string) (*entities.Ayah, error)
	AyahWithTranslation(ctx context.Context, ref string, translation string) (*entities.Ayah, error)
	Search(ctx context.Context, keyword string, scope quran.SearchScope, edition string) (*entities.SearchResult, error)
	Meta(ctx context.Context) (*entities.Meta, error)
	AudioURL(surah, ayah int, reciter string) string
}

type PlainOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type SurahsOutput struct {
	Body []entities.SurahMeta
}

type SurahOutput struct {
	Body *entities.Surah
}

type SectionOutput struct {
	Body *entities.Section
}

type AyahOutput struct {
	Body *entities.Ayah
}

type SearchOutput struct {
	Body *entities.SearchResult
}

type MetaOutput struct {
	Body *entities.Meta
}

type AudioOutput struct {
	Body AudioLink
}

// AudioLink is a synthesized recitation URL for one ayah.
type AudioLink struct {
	Surah   int    `json:"surah"`
	Ayah    int    `json:"ayah"`
	Reciter string `json:"reciter"`
	URL     string `json:"url"`
}

// Bounds are left to the client so that every reference error maps to 400.
type SurahInput struct {
	Number      int    `path:"n" doc:"Surah number (1-114)"`
	Edition     string `query:"edition" doc:"Text edition, defaults to the configured source edition. Cannot be combined with translation"`
	Translation string `query:"translation" doc:"When set, ayahs carry this translation alongside the source text"`
}

type PageInput struct {
	Number      int    `path:"n" doc:"Mushaf page number (1-604)"`
	Edition     string `query:"edition" doc:"Text edition, defaults to the configured source edition. Cannot be combined with translation"`
	Translation string `query:"translation" doc:"When set, ayahs carry this translation alongside the source text"`
}

type JuzInput struct {
	Number      int    `path:"n" doc:"Juz number (1-30)"`
	Edition     string `query:"edition" doc:"Text edition, defaults to the configured source edition. Cannot be combined with translation"`
	Translation string `query:"translation" doc:"When set, ayahs carry this translation alongside the source text"`
}

type AyahInput struct {
	Ref         string `path:"ref" doc:"Global ayah number (1-6236) or surah:ayah"`
	Edition     string `query:"edition" doc:"Text edition, defaults to the configured source edition. Cannot be combined with translation"`
	Translation string `query:"translation" doc:"When set, the ayah carries this translation alongside the source text"`
}

type SearchInput struct {
	Keyword string `query:"q" doc:"Word to look up"`
	Surah   string `query:"surah" doc:"Surah number or 'all'" default:"all"`
	Edition string `query:"edition" doc:"Edition to search, defaults to the configured translation"`
}

type AudioInput struct {
	Ref     string `path:"ref" doc:"Ayah reference in surah:ayah form"`
	Reciter string `query:"reciter" doc:"Audio edition, defaults to the configured reciter"`
}

// Setup registers every operation of the API.
func Setup(api huma.API, client QuranClient, logger *zap.Logger) {
	api.UseMiddleware(requestLogger(logger))

	h := &handler{client: client, logger: logger}

	huma.Register(api, huma.Operation{
		OperationID: "HealthCheck",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Description: "Check if the API is running",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*PlainOutput, error) {
		return &PlainOutput{
			ContentType: "text/plain",
			Body:        []byte("OK"),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ListSurahs",
		Method:      http.MethodGet,
		Path:        "/v1/surahs",
		Summary:     "List surahs",
		Description: "Get descriptive data of all 114 surahs",
		Tags:        []string{"Surahs"},
	}, h.listSurahs)

	huma.Register(api, huma.Operation{
		OperationID: "GetSurah",
		Method:      http.MethodGet,
		Path:        "/v1/surahs/{n}",
		Summary:     "Get surah",
		Description: "Get a surah with its ayahs, optionally paired with a translation",
		Tags:        []string{"Surahs"},
	}, h.getSurah)

	huma.Register(api, huma.Operation{
		OperationID: "GetPage",
		Method:      http.MethodGet,
		Path:        "/v1/pages/{n}",
		Summary:     "Get page",
		Description: "Get the ayahs printed on one mushaf page",
		Tags:        []string{"Sections"},
	}, h.getPage)

	huma.Register(api, huma.Operation{
		OperationID: "GetJuz",
		Method:      http.MethodGet,
		Path:        "/v1/juz/{n}",
		Summary:     "Get juz",
		Description: "Get the ayahs of one juz",
		Tags:        []string{"Sections"},
	}, h.getJuz)

	huma.Register(api, huma.Operation{
		OperationID: "GetAyah",
		Method:      http.MethodGet,
		Path:        "/v1/ayahs/{ref}",
		Summary:     "Get ayah",
		Description: "Get one ayah by global number or surah:ayah reference",
		Tags:        []string{"Ayahs"},
	}, h.getAyah)

	huma.Register(api, huma.Operation{
		OperationID: "GetAudio",
		Method:      http.MethodGet,
		Path:        "/v1/audio/{ref}",
		Summary:     "Get audio URL",
		Description: "Build the recitation URL of one ayah without contacting the remote service",
		Tags:        []string{"Ayahs"},
	}, h.getAudio)

	huma.Register(api, huma.Operation{
		OperationID: "Search",
		Method:      http.MethodGet,
		Path:        "/v1/search",
		Summary:     "Search",
		Description: "Search a keyword in one edition, across the corpus or within one surah",
		Tags:        []string{"Search"},
	}, h.search)

	huma.Register(api, huma.Operation{
		OperationID: "GetMeta",
		Method:      http.MethodGet,
		Path:        "/v1/meta",
		Summary:     "Get corpus metadata",
		Description: "Get aggregate counts of ayahs, pages, juzs and sajdas",
		Tags:        []string{"Meta"},
	}, h.meta)
}
