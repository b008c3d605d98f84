package rest

const (
	ContentTypeJSON = "application/json"
)
