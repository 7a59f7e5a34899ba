package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionRead     = "read"
	actionList     = "list"
	actionListen   = "listen"
	actionSettings = "settings"
)

// Kinds of readable sections.
const (
	kindSurah = "surah"
	kindPage  = "page"
	kindJuz   = "juz"
)

// Settings sub-actions.
const (
	settingsMenu        = "menu"
	settingsTranslation = "translation"
	settingsReciter     = "reciter"
	settingsDaily       = "daily"
)

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as a non-negative integer.
func (cd callbackData) intParam(i int) (int, error) {
	if i >= len(cd.Params) {
		return 0, errBadCallback
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil || n < 0 {
		return 0, errBadCallback
	}
	return n, nil
}

// buildReadCallback builds callback data for one page of a surah, mushaf page or juz.
func buildReadCallback(kind string, number, page int) string {
	return callbackData{
		Action: actionRead,
		Params: []string{kind, strconv.Itoa(number), strconv.Itoa(page)},
	}.encode()
}

// buildListCallback builds callback data for a page of the surah list.
func buildListCallback(page int) string {
	return callbackData{
		Action: actionList,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

// buildListenCallback builds callback data for the recitation of one page of a surah.
func buildListenCallback(surah, page int) string {
	return callbackData{
		Action: actionListen,
		Params: []string{strconv.Itoa(surah), strconv.Itoa(page)},
	}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}
