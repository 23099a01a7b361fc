package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// respond writes i as JSON with a 200 status.
func respond(w http.ResponseWriter, i interface{}) {
	respondWithStatus(w, i, http.StatusOK)
}

func respondWithStatus(w http.ResponseWriter, i interface{}, status int) {
	binary, err := json.Marshal(i)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Problem marshalling response", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(binary); err != nil {
		log.Printf("[ERROR] writing response: %v", err)
	}
}

// respondWithError returns a JSON error envelope and logs server-side
// failures.
func respondWithError(w http.ResponseWriter, status int, message string, err error) {
	if status >= 500 {
		log.Printf("[ERROR] %s: %v", message, err)
	}

	response := map[string]interface{}{
		"status": status,
		"error": map[string]interface{}{
			"message": message,
		},
	}
	if err != nil {
		response["err"] = err.Error()
	}

	binary, marshalErr := json.Marshal(response)
	if marshalErr != nil {
		log.Printf("[ERROR] marshalling error response: %v", marshalErr)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(binary); err != nil {
		log.Printf("[ERROR] writing error response: %v", err)
	}
}

func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
