package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

/*
WriteJson renders a value as a JSON response with the given status code.
*/
func WriteJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

/*
ReadJson decodes a JSON request body into dest. Unknown fields are an
error.
*/
func ReadJson(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}

	return nil
}

type ErrorResponse struct {
	Message string `json:"message"`
}

/*
WriteError renders a standard error payload.
*/
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJson(w, status, ErrorResponse{Message: message})
}
