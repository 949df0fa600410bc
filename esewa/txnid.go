package esewa

import (
	"fmt"
	"math/rand"
	"time"
)

const txnAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTransactionUUID returns a caller-generated transaction identifier in
// the form id-<unix-millis>-<9 random [0-9a-z] chars>. The random suffix
// gives 36^9 combinations per millisecond bucket, so calls landing in the
// same millisecond still differ. The process-wide rand source is used; it
// does not need to be cryptographically secure, the id only correlates an
// initiation with its callback.
func NewTransactionUUID() string {
	var suffix [9]byte
	for i := range suffix {
		suffix[i] = txnAlphabet[rand.Intn(len(txnAlphabet))]
	}
	return fmt.Sprintf("id-%d-%s", time.Now().UnixMilli(), suffix[:])
}
