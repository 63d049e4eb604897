// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"seoscribe/internal/ai"
)

// ValidationError reports a malformed or out-of-range request. Maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConfigurationError reports a missing credential or setting. The message
// names the environment key the operator must set. Maps to 500.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string { return e.Key + " not configured" }

// writeError sends the JSON error envelope with the status implied by the
// error's kind. Vendor and configuration failures are server-side problems,
// so everything that is not a validation error maps to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var ve *ValidationError
	if errors.As(err, &ve) {
		status = http.StatusBadRequest
	}

	var se *ai.StatusError
	if errors.As(err, &se) {
		slog.Error("upstream vendor error", "provider", se.Provider, "status", se.Status)
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response", "error", err)
	}
}

// decodeJSON parses the request body into dst, returning a ValidationError
// on malformed JSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ValidationError{Msg: "invalid JSON body"}
	}
	return nil
}
