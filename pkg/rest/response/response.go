package response

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/ucsb-cs156/crudapi/pkg/rest"
)

func JSON(w http.ResponseWriter, responseCode int, data any) error {
	w.Header().Set("content-type", rest.ContentTypeJSON)
	w.WriteHeader(responseCode)
	return json.NewEncoder(w).Encode(data)
}

func Err(w http.ResponseWriter, err Error, msg string) error {
	respErr, ok := Errors[err]
	if !ok {
		return fmt.Errorf("REST error response not found: %s", err)
	}
	respErr.Details = msg
	return JSON(w, respErr.Code, respErr)
}

// Message is the generic confirmation body, e.g. after a delete.
type Message struct {
	Message string `json:"message"`
}

func Msg(w http.ResponseWriter, responseCode int, format string, args ...any) error {
	return JSON(w, responseCode, Message{Message: fmt.Sprintf(format, args...)})
}

// Exception is the body of a typed domain failure.
type Exception struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func Exc(w http.ResponseWriter, responseCode int, typ, msg string) error {
	return JSON(w, responseCode, Exception{Type: typ, Message: msg})
}
