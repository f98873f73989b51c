package model

// AppError is the only error payload returned by this service in "strict mode".
// Malformed options never produce one (they degrade to defaults); it exists for
// request and document errors in the hosting shell.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Stage   string `json:"stage"`

	Source  string `json:"source,omitempty"`
	Snippet string `json:"snippet,omitempty"` // <= 200 chars
	Hint    string `json:"hint,omitempty"`
}

type ErrorResponse struct {
	Error AppError `json:"error"`
}
