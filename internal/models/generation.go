package models

import "time"

// Generation is a password produced for one request, as handed to the
// presentation layer. It is never persisted.
type Generation struct {
	ID        string    `json:"id"`
	Password  string    `json:"password"`
	Length    int       `json:"length"`
	Advisory  bool      `json:"advisory,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
