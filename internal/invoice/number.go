package invoice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateNumber produces a display invoice number, e.g.
// INV-20250901-103000-123-4567.
func GenerateNumber() string {
	now := time.Now().UTC()

	datePart := now.Format("20060102-150405")
	millis := now.Nanosecond() / int(time.Millisecond)

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf(
		"INV-%s-%03d-%04d",
		datePart,
		millis,
		n.Int64(),
	)
}
