package request

import "strings"

// GenerateCodeRequest carries the optional generation parameters; zero
// values fall back to the service defaults (4 digits, 30 minutes).
type GenerateCodeRequest struct {
	Length            int `json:"length"`
	ExpirationMinutes int `json:"expiration_minutes"`
}

// ValidateCodeRequest is the public code-check payload.
type ValidateCodeRequest struct {
	Code string `json:"codigo" binding:"required"`
}

func (r ValidateCodeRequest) Normalized() string {
	return strings.TrimSpace(r.Code)
}
