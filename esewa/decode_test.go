package esewa

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

// encodeResponse builds the base64 blob the gateway would append to the
// success redirect for the given response.
func encodeResponse(t *testing.T, resp PaymentResponse) string {
	t.Helper()
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal test response: %v", err)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func testResponse(key string) PaymentResponse {
	return PaymentResponse{
		TransactionCode:  "000D13A",
		Status:           StatusComplete,
		TotalAmount:      "110.0",
		TransactionUUID:  "id-123-abc",
		ProductCode:      "EPAYTEST",
		SignedFieldNames: "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
		Signature:        Sign("110.0", "id-123-abc", "EPAYTEST", []byte(key)),
	}
}

func TestDecodeResponse_RoundTrip(t *testing.T) {
	original := testResponse(testKey)
	blob := encodeResponse(t, original)

	decoded, err := DecodeResponse(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *decoded != original {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", *decoded, original)
	}
}

func TestDecodeResponse_IgnoresUnknownFields(t *testing.T) {
	raw := []byte(`{
		"transaction_code": "000D13A",
		"status": "COMPLETE",
		"total_amount": "110.0",
		"transaction_uuid": "id-123-abc",
		"product_code": "EPAYTEST",
		"signed_field_names": "total_amount,transaction_uuid,product_code",
		"signature": "abc",
		"some_future_field": "ignored"
	}`)
	blob := base64.StdEncoding.EncodeToString(raw)

	decoded, err := DecodeResponse(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.TransactionCode != "000D13A" {
		t.Errorf("expected transaction_code 000D13A, got %q", decoded.TransactionCode)
	}
}

func TestDecodeResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want error
	}{
		{"not base64", "not-valid-base64!!!", ErrEncoding},
		{"invalid utf-8", base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}), ErrEncoding},
		{"not json", base64.StdEncoding.EncodeToString([]byte("plain text, no json here")), ErrMalformed},
		{"json array", base64.StdEncoding.EncodeToString([]byte(`["a","b"]`)), ErrMalformed},
		{"missing signature", base64.StdEncoding.EncodeToString([]byte(`{
			"transaction_code": "000D13A",
			"status": "COMPLETE",
			"total_amount": "110.0",
			"transaction_uuid": "id-123-abc",
			"product_code": "EPAYTEST",
			"signed_field_names": "total_amount,transaction_uuid,product_code"
		}`)), ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResponse(tt.blob)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected error kind %v, got %v", tt.want, err)
			}
		})
	}
}
