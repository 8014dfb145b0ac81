package rest

import (
	"encoding/json"
	"net/http"
)

const (
	msgGeneric     = "Something went wrong"
	msgMissingWord = "Missing word"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"err": message})
}
