package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"oceanKeeperAPI/internal/apperr"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithAppError maps a typed service error onto the wire. Only
// the client-safe message leaves the process; internal detail is
// logged here.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Printf("Unclassified error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if appErr.Code == apperr.CodeStorageUnavailable || appErr.Code == apperr.CodeInternal {
		log.Printf("Request failed: %v", appErr)
	}
	if appErr.RetryAfter > 0 {
		seconds := int(appErr.RetryAfter.Seconds()) + 1
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}
	respondWithError(w, appErr.Status(), appErr.Message)
}
