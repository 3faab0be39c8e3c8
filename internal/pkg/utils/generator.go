package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateLockValue() string {
	return uuid.NewString()
}

// IsValidSessionID accepts only ids the portal itself could have issued.
func IsValidSessionID(sessionID string) bool {
	parsed, err := uuid.Parse(sessionID)
	return err == nil && parsed.String() == sessionID
}
