package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackData_EncodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		action string
		params []string
	}{
		{"read", buildReadCallback(kindSurah, 2, 3), actionRead, []string{"surah", "2", "3"}},
		{"list", buildListCallback(4), actionList, []string{"4"}},
		{"listen", buildListenCallback(36, 0), actionListen, []string{"36", "0"}},
		{"settings menu", buildSettingsCallback(settingsMenu), actionSettings, []string{"menu"}},
		{"settings value", buildSettingsCallback(settingsReciter, "ar.husary"), actionSettings, []string{"reciter", "ar.husary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := decodeCallback(tt.data)
			assert.Equal(t, tt.action, cd.Action)
			assert.Equal(t, tt.params, cd.Params)
			assert.Equal(t, tt.data, cd.encode())
			assert.LessOrEqual(t, len(tt.data), 64)
		})
	}
}

func TestCallbackData_ReadFormat(t *testing.T) {
	assert.Equal(t, "read:juz:30:1", buildReadCallback(kindJuz, 30, 1))
}

func TestCallbackData_IntParam(t *testing.T) {
	cd := decodeCallback("read:page:12:x")

	n, err := cd.intParam(1)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = cd.intParam(2)
	assert.ErrorIs(t, err, errBadCallback)

	_, err = cd.intParam(5)
	assert.ErrorIs(t, err, errBadCallback)

	_, err = decodeCallback("list:-1").intParam(0)
	assert.ErrorIs(t, err, errBadCallback)
}

func TestCallbackData_NoParams(t *testing.T) {
	cd := decodeCallback("list")
	assert.Equal(t, "list", cd.Action)
	assert.Empty(t, cd.Params)
	assert.Equal(t, "list", callbackData{Action: actionList}.encode())
}
