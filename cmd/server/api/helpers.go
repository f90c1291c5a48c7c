package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elC0mpa/azure-advisor/model"
)

// maxBodyBytes bounds request bodies; every request is a small JSON document.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}

// writeServiceError maps engine errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, model.ErrUnsupportedCurrency), errors.Is(err, model.ErrMalformedResourceID):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeResult sends a remediation result, failed ones as 400.
func writeResult(w http.ResponseWriter, result model.RemediationResult) {
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}
