package simulation

import (
	"fmt"
	"time"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderID builds a simulated order identifier from the delivery center
// serving the source order's store: {code}-{YYMMDDHHMMSS}-{4 random
// uppercase alphanumerics}.
func OrderID(deliveryCenterCode string, now time.Time, rnd Rand) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = idAlphabet[rnd.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%s-%s-%s", deliveryCenterCode, now.Format("060102150405"), suffix)
}
