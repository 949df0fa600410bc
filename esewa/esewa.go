// Package esewa integrates the eSewa ePay v2 payment gateway. It builds
// signed payment-initiation requests, posts them to the gateway form
// endpoint, and decodes and validates the base64 callback blob the gateway
// appends to the success redirect.
//
// The signing and validation functions are pure and safe for concurrent use;
// only Client.Initiate touches the network.
package esewa

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultSignedFieldNames lists the fields eSewa expects to be covered by
// the request signature, in signing order.
const DefaultSignedFieldNames = "total_amount,transaction_uuid,product_code"

// StatusComplete is the status eSewa reports for a settled payment. Any
// other status value is passed through as an opaque string.
const StatusComplete = "COMPLETE"

// PaymentRequest carries the fields posted to the gateway form endpoint.
// All values are strings and are inserted into the form and the signing
// string verbatim: "100" and "100.0" are different amounts as far as the
// signature is concerned. The request is built immediately before
// initiation and not reused.
type PaymentRequest struct {
	Amount                string `json:"amount"`
	TaxAmount             string `json:"tax_amount"`
	TotalAmount           string `json:"total_amount"`
	TransactionUUID       string `json:"transaction_uuid"`
	ProductCode           string `json:"product_code"`
	ProductServiceCharge  string `json:"product_service_charge"`
	ProductDeliveryCharge string `json:"product_delivery_charge"`
	SuccessURL            string `json:"success_url"`
	FailureURL            string `json:"failure_url"`
	SignedFieldNames      string `json:"signed_field_names"`
}

// PaymentResponse is the decoded callback payload from eSewa. All fields
// are strings on the wire, including total_amount.
type PaymentResponse struct {
	TransactionCode  string `json:"transaction_code"`
	Status           string `json:"status"`
	TotalAmount      string `json:"total_amount"`
	TransactionUUID  string `json:"transaction_uuid"`
	ProductCode      string `json:"product_code"`
	SignedFieldNames string `json:"signed_field_names"`
	Signature        string `json:"signature"`
}

// ValidationResult pairs a decoded response with the outcome of the
// signature check. An invalid signature is a normal outcome, not an error:
// the caller decides whether to reject the order.
type ValidationResult struct {
	SignatureValid bool            `json:"signature_valid"`
	Response       PaymentResponse `json:"response"`
}

// NewPaymentRequest builds a request with a fresh transaction UUID, the
// default signed field names, and total_amount computed as
// amount + tax + service charge + delivery charge using exact decimal
// arithmetic. The component amounts are kept verbatim.
//
// Callers that need a specific string representation of the total (the
// gateway signs the literal text, not the numeric value) should set
// TotalAmount on the returned request before initiating.
func NewPaymentRequest(amount, taxAmount, serviceCharge, deliveryCharge, productCode, successURL, failureURL string) (*PaymentRequest, error) {
	total := decimal.Zero
	for _, part := range []struct{ name, value string }{
		{"amount", amount},
		{"tax_amount", taxAmount},
		{"product_service_charge", serviceCharge},
		{"product_delivery_charge", deliveryCharge},
	} {
		d, err := decimal.NewFromString(part.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", part.name, part.value, err)
		}
		total = total.Add(d)
	}

	return &PaymentRequest{
		Amount:                amount,
		TaxAmount:             taxAmount,
		TotalAmount:           total.String(),
		TransactionUUID:       NewTransactionUUID(),
		ProductCode:           productCode,
		ProductServiceCharge:  serviceCharge,
		ProductDeliveryCharge: deliveryCharge,
		SuccessURL:            successURL,
		FailureURL:            failureURL,
		SignedFieldNames:      DefaultSignedFieldNames,
	}, nil
}
