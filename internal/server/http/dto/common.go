package dto

import (
	"bytes"
	"encoding/json"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// Scalar accepts a JSON string or number and keeps its text form.
// Table numbers and order references arrive in both shapes.
type Scalar struct {
	Value string
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Scalar{}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Scalar{Value: str, Set: true}
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = Scalar{Value: num.String(), Set: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.Set {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// Ptr returns nil for an absent value.
func (s Scalar) Ptr() *string {
	if !s.Set {
		return nil
	}
	v := s.Value
	return &v
}
