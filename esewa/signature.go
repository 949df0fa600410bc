package esewa

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// SigningString builds the canonical message eSewa signs. Field order is
// fixed and values are inserted verbatim — no trimming, no numeric
// normalization, no escaping. This must stay bit-exact for interoperability.
func SigningString(totalAmount, transactionUUID, productCode string) string {
	return fmt.Sprintf("total_amount=%s,transaction_uuid=%s,product_code=%s",
		totalAmount, transactionUUID, productCode)
}

// Sign computes the HMAC-SHA256 signature over the canonical signing string
// and returns it as standard padded base64. Deterministic, no error path:
// HMAC accepts keys of any length, empty included.
func Sign(totalAmount, transactionUUID, productCode string, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(SigningString(totalAmount, transactionUUID, productCode)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
