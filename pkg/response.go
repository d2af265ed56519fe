package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

func writeBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Errorf("write %s response (%d bytes): %s", contentType, len(body), err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	writeBody(w, contentTypeText, []byte(message), http.StatusOK)
}

// SendJsonResponse marshals the payload and writes it with the given status code.
// A payload that fails to marshal results in a plain 500.
func SendJsonResponse(w http.ResponseWriter, statusCode int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal %T response: %s", payload, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeBody(w, contentTypeJSON, body, statusCode)
}
