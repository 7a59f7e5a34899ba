package httpapi

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

type handler struct {
	client QuranClient
	logger *zap.Logger
}

// checkEditions rejects an explicit text edition next to a translation.
// Paired responses always use the configured source edition.
func checkEditions(edition, translation string) error {
	if edition != "" && translation != "" {
		return huma.Error400BadRequest("edition cannot be combined with translation")
	}
	return nil
}

func (h *handler) listSurahs(ctx context.Context, _ *struct{}) (*SurahsOutput, error) {
	surahs, err := h.client.Surahs(ctx)
	if err != nil {
		return nil, h.toHTTPError("list surahs", err)
	}
	return &SurahsOutput{Body: surahs}, nil
}

func (h *handler) getSurah(ctx context.Context, input *SurahInput) (*SurahOutput, error) {
	if err := checkEditions(input.Edition, input.Translation); err != nil {
		return nil, err
	}
	var (
		resp = &SurahOutput{}
		err  error
	)
	if input.Translation != "" {
		resp.Body, err = h.client.SurahWithTranslation(ctx, input.Number, input.Translation)
	} else {
		resp.Body, err = h.client.Surah(ctx, input.Number, input.Edition)
	}
	if err != nil {
		return nil, h.toHTTPError("get surah", err)
	}
	return resp, nil
}

func (h *handler) getPage(ctx context.Context, input *PageInput) (*SectionOutput, error) {
	if err := checkEditions(input.Edition, input.Translation); err != nil {
		return nil, err
	}
	var (
		resp = &SectionOutput{}
		err  error
	)
	if input.Translation != "" {
		resp.Body, err = h.client.PageWithTranslation(ctx, input.Number, input.Translation)
	} else {
		resp.Body, err = h.client.Page(ctx, input.Number, input.Edition)
	}
	if err != nil {
		return nil, h.toHTTPError("get page", err)
	}
	return resp, nil
}

func (h *handler) getJuz(ctx context.Context, input *JuzInput) (*SectionOutput, error) {
	if err := checkEditions(input.Edition, input.Translation); err != nil {
		return nil, err
	}
	var (
		resp = &SectionOutput{}
		err  error
	)
	if input.Translation != "" {
		resp.Body, err = h.client.JuzWithTranslation(ctx, input.Number, input.Translation)
	} else {
		resp.Body, err = h.client.Juz(ctx, input.Number, input.Edition)
	}
	if err != nil {
		return nil, h.toHTTPError("get juz", err)
	}
	return resp, nil
}

func (h *handler) getAyah(ctx context.Context, input *AyahInput) (*AyahOutput, error) {
	if err := checkEditions(input.Edition, input.Translation); err != nil {
		return nil, err
	}
	var (
		resp = &AyahOutput{}
		err  error
	)
	if input.Translation != "" {
		resp.Body, err = h.client.AyahWithTranslation(ctx, input.Ref, input.Translation)
	} else {
		resp.Body, err = h.client.Ayah(ctx, input.Ref, input.Edition)
	}
	if err != nil {
		return nil, h.toHTTPError("get ayah", err)
	}
	return resp, nil
}

func (h *handler) getAudio(_ context.Context, input *AudioInput) (*AudioOutput, error) {
	ref, err := quran.ResolveAyahReference(input.Ref)
	if err != nil {
		return nil, h.toHTTPError("get audio", err)
	}
	if !ref.IsPair() {
		return nil, huma.Error400BadRequest(fmt.Sprintf("audio needs a surah:ayah reference, got %q", input.Ref))
	}

	reciter := input.Reciter
	if reciter == "" {
		reciter = h.client.Editions().Reciter
	}

	return &AudioOutput{Body: AudioLink{
		Surah:   ref.Surah,
		Ayah:    ref.Ayah,
		Reciter: reciter,
		URL:     h.client.AudioURL(ref.Surah, ref.Ayah, reciter),
	}}, nil
}

func (h *handler) search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	scope, err := quran.ParseSearchScope(input.Surah)
	if err != nil {
		return nil, h.toHTTPError("search", err)
	}

	result, err := h.client.Search(ctx, input.Keyword, scope, input.Edition)
	if err != nil {
		return nil, h.toHTTPError("search", err)
	}
	return &SearchOutput{Body: result}, nil
}

func (h *handler) meta(ctx context.Context, _ *struct{}) (*MetaOutput, error) {
	m, err := h.client.Meta(ctx)
	if err != nil {
		return nil, h.toHTTPError("get meta", err)
	}
	return &MetaOutput{Body: m}, nil
}
