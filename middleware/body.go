package middleware

import (
	"bytes"
	"encoding/json"
)

// ParseStrict decodes a JSON body into dst, rejecting unknown fields.
// Fiber's BodyParser silently drops them, which would let bad payloads
// reach the domain layer unnoticed.
func ParseStrict(body []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
