package utils

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateIntentReference creates a human-readable reference for a booking intent.
// Format: INT-YYYYMMDD-HHMMSS-RANDOM
func GenerateIntentReference(now time.Time) string {
	return fmt.Sprintf("INT-%s-%s-%04d",
		now.Format("20060102"),
		now.Format("150405"),
		rand.IntN(10000),
	)
}
