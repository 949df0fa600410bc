package esewa

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var txnPattern = regexp.MustCompile(`^id-\d+-[0-9a-z]{9}$`)

func TestNewTransactionUUID_Shape(t *testing.T) {
	id := NewTransactionUUID()
	if !txnPattern.MatchString(id) {
		t.Fatalf("transaction id %q does not match id-<millis>-<9 chars>", id)
	}

	parts := strings.SplitN(id, "-", 3)
	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("middle segment %q is not a decimal integer: %v", parts[1], err)
	}
	if millis <= 0 {
		t.Fatalf("expected a positive millisecond timestamp, got %d", millis)
	}
}

func TestNewTransactionUUID_Distinct(t *testing.T) {
	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		id := NewTransactionUUID()
		if seen[id] {
			t.Fatalf("duplicate transaction id after %d calls: %q", i+1, id)
		}
		seen[id] = true
	}
}

func TestNewTransactionUUID_ConcurrentCalls(t *testing.T) {
	const goroutines = 20
	ids := make(chan string, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			ids <- NewTransactionUUID()
		}()
	}

	seen := make(map[string]bool, goroutines)
	for i := 0; i < goroutines; i++ {
		id := <-ids
		if seen[id] {
			t.Fatalf("duplicate transaction id under concurrency: %q", id)
		}
		seen[id] = true
	}
}
