package submission

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// IDGenerator produces an application identifier for a submission made at t.
type IDGenerator func(t time.Time) string

// NewApplicationID returns "APP-<unix millis>-<3 random digits>". Two
// submissions in the same millisecond collide with probability 1/1000, so the
// identifier is a correlation handle, not a key.
func NewApplicationID(t time.Time) string {
	return fmt.Sprintf("APP-%d-%03d", t.UnixMilli(), rand.IntN(1000))
}
