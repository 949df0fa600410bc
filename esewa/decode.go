package esewa

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// DecodeResponse decodes the base64 callback blob eSewa appends to the
// success redirect into a PaymentResponse. Errors wrap ErrEncoding when the
// blob is not valid base64/UTF-8 and ErrMalformed when the decoded text
// does not match the response schema. Unknown extra fields are ignored.
func DecodeResponse(blob string) (*PaymentResponse, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrEncoding, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: payload is not valid UTF-8", ErrEncoding)
	}

	var resp PaymentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := checkRequired(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// checkRequired rejects payloads that parsed as JSON but are missing schema
// fields. encoding/json leaves absent fields as zero values, so an empty
// string here means the gateway never sent the field.
func checkRequired(resp *PaymentResponse) error {
	for _, field := range []struct{ name, value string }{
		{"transaction_code", resp.TransactionCode},
		{"status", resp.Status},
		{"total_amount", resp.TotalAmount},
		{"transaction_uuid", resp.TransactionUUID},
		{"product_code", resp.ProductCode},
		{"signed_field_names", resp.SignedFieldNames},
		{"signature", resp.Signature},
	} {
		if field.value == "" {
			return fmt.Errorf("%w: missing field %s", ErrMalformed, field.name)
		}
	}
	return nil
}
