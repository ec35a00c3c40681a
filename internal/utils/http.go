package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/helios-keeper/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails it responds with 500 Internal Server Error and a
// structured error body, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, session, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		_, _ = WriteError(w, "serialization_failed", "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] body with statusCode.
func WriteError(w http.ResponseWriter, code, message string, statusCode int) (int, error) {
	body, _ := json.Marshal(models.ErrorResponse{Code: code, Message: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
