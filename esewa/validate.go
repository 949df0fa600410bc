package esewa

import "crypto/hmac"

// Validate recomputes the expected signature for a decoded response and
// checks it against the signature the gateway supplied. The comparison is
// constant-time (hmac.Equal) since the signature arrives from the outside.
// A mismatch is reported through SignatureValid, never as an error.
func Validate(resp *PaymentResponse, key []byte) ValidationResult {
	expected := Sign(resp.TotalAmount, resp.TransactionUUID, resp.ProductCode, key)
	return ValidationResult{
		SignatureValid: hmac.Equal([]byte(expected), []byte(resp.Signature)),
		Response:       *resp,
	}
}

// ValidateEncoded decodes a callback blob and validates its signature in
// one step. Only decode failures produce an error; see DecodeResponse for
// the kinds.
func ValidateEncoded(blob string, key []byte) (ValidationResult, error) {
	resp, err := DecodeResponse(blob)
	if err != nil {
		return ValidationResult{}, err
	}
	return Validate(resp, key), nil
}
