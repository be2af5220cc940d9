package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const marshalFailureBody = `{"error":"internal server error"}`

// WriteJSON encodes data and writes it with statusCode and a JSON content
// type. It returns the number of body bytes written.
//
// When data cannot be encoded nothing of it is sent: the response becomes a
// 500 with a generic JSON error and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error encoding response as JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
