// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the JSON body written by [WriteError].
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets the "Content-Type" header to "application/json" before writing the
// status. If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, status, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": reason} with statusCode.
func WriteError(w http.ResponseWriter, reason string, statusCode int) {
	_, _ = WriteJSON(w, ErrorBody{Error: reason}, statusCode)
}
