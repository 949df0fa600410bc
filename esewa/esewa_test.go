package esewa

import "testing"

func TestNewPaymentRequest_ComputesTotal(t *testing.T) {
	tests := []struct {
		name                           string
		amount, tax, service, delivery string
		wantTotal                      string
	}{
		{"whole amounts", "100", "10", "0", "0", "110"},
		{"fractional parts sum to whole", "100.5", "0.5", "0", "0", "101"},
		{"fractional total", "99.90", "0.05", "1", "0.5", "101.45"},
		{"zero everything", "0", "0", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewPaymentRequest(tt.amount, tt.tax, tt.service, tt.delivery,
				"EPAYTEST", "http://x/success", "http://x/failure")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.TotalAmount != tt.wantTotal {
				t.Errorf("total: got %q, want %q", req.TotalAmount, tt.wantTotal)
			}
			if req.Amount != tt.amount {
				t.Errorf("amount must stay verbatim: got %q, want %q", req.Amount, tt.amount)
			}
		})
	}
}

func TestNewPaymentRequest_Defaults(t *testing.T) {
	req, err := NewPaymentRequest("100", "10", "0", "0", "EPAYTEST", "http://x/success", "http://x/failure")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.SignedFieldNames != DefaultSignedFieldNames {
		t.Errorf("signed_field_names: got %q, want %q", req.SignedFieldNames, DefaultSignedFieldNames)
	}
	if !txnPattern.MatchString(req.TransactionUUID) {
		t.Errorf("transaction uuid %q does not match the id-<millis>-<suffix> shape", req.TransactionUUID)
	}
}

func TestNewPaymentRequest_RejectsNonNumericAmounts(t *testing.T) {
	_, err := NewPaymentRequest("abc", "10", "0", "0", "EPAYTEST", "http://x/s", "http://x/f")
	if err == nil {
		t.Fatal("expected an error for a non-numeric amount")
	}
}

func TestParseEnvironment(t *testing.T) {
	if env, err := ParseEnvironment("sandbox"); err != nil || env != Sandbox {
		t.Errorf("sandbox: got (%v, %v)", env, err)
	}
	if env, err := ParseEnvironment("production"); err != nil || env != Production {
		t.Errorf("production: got (%v, %v)", env, err)
	}
	if _, err := ParseEnvironment("staging"); err == nil {
		t.Error("expected an error for an unknown environment")
	}
}

func TestEnvironment_FormURL(t *testing.T) {
	if got := Sandbox.FormURL(); got != "https://rc-epay.esewa.com.np/api/epay/main/v2/form" {
		t.Errorf("sandbox form URL: got %q", got)
	}
	if got := Production.FormURL(); got != "https://epay.esewa.com.np/api/epay/main/v2/form" {
		t.Errorf("production form URL: got %q", got)
	}
}

func TestEnvironment_TextRoundTrip(t *testing.T) {
	for _, env := range []Environment{Sandbox, Production} {
		text, err := env.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", env, err)
		}
		var back Environment
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != env {
			t.Errorf("round trip changed %v to %v", env, back)
		}
	}
}
