package domain

import (
	"fmt"
	"math/rand"
	"time"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber generates a human-readable order number from the current
// millisecond timestamp and a random base36 suffix, e.g.
// "ORD-1735689600123-K7Q2M9X4B". Uniqueness is best-effort; the column's
// unique index is the backstop.
func NewOrderNumber() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
