package request

import (
	"io"

	json "github.com/goccy/go-json"
)

func JSONDECODE[T any](body io.Reader, dest *T) error {
	return json.NewDecoder(body).Decode(dest)
}
