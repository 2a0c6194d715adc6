package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectColorOrDefault(t *testing.T) {
	require.Equal(t, "blue", projectColorOrDefault("blue"))
	require.Equal(t, defaultProjectColor, projectColorOrDefault(""))
	require.Equal(t, defaultProjectColor, projectColorOrDefault("magenta"))
}

func TestProjectColorsEndpoint(t *testing.T) {
	rr := doReq(t, handleProjectColors, http.MethodGet, "/api/projects/colors", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Colors []struct {
			Key   string `json:"key"`
			Label string `json:"label"`
		} `json:"colors"`
		Default string `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, defaultProjectColor, out.Default)
	require.Len(t, out.Colors, len(projectColorKeys))
	require.Equal(t, "slate", out.Colors[0].Key)
	require.Equal(t, "Neutral", out.Colors[0].Label)
}
