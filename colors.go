package main

import "net/http"

// Fixed set of project color keys the client maps to its palette.
const defaultProjectColor = "slate"

var projectColorKeys = []string{"slate", "blue", "green", "purple", "amber", "rose"}

var projectColorLabels = map[string]string{
	"slate":  "Neutral",
	"blue":   "Blue",
	"green":  "Green",
	"purple": "Purple",
	"amber":  "Amber",
	"rose":   "Rose",
}

func isProjectColorKey(key string) bool {
	_, ok := projectColorLabels[key]
	return ok
}

// projectColorOrDefault maps absent/unknown keys to the neutral default.
func projectColorOrDefault(key string) string {
	if isProjectColorKey(key) {
		return key
	}
	return defaultProjectColor
}

// GET /api/projects/colors
func handleProjectColors(w http.ResponseWriter, r *http.Request) {
	type colorDTO struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
	out := make([]colorDTO, 0, len(projectColorKeys))
	for _, k := range projectColorKeys {
		out = append(out, colorDTO{Key: k, Label: projectColorLabels[k]})
	}
	writeJSON(w, http.StatusOK, map[string]any{"colors": out, "default": defaultProjectColor})
}
