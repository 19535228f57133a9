package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	RequestIDSize     = 12
	requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// RequestID returns a short random id used to correlate log lines of one
// request.
func RequestID() string {
	return gonanoid.MustGenerate(requestIDAlphabet, RequestIDSize)
}
