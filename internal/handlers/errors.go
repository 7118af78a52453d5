package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondWithError sends a JSON error to the client and logs the underlying
// cause when one exists
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	writeJSON(w, status, map[string]string{"error": userMsg})
}

// writeJSON encodes a response body with the right headers
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// decodeJSON parses a request body into v, enforcing known fields
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
