package esewa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const defaultTimeout = 30 * time.Second

// Doer is the transport capability Client needs. *http.Client satisfies it;
// tests substitute their own implementation so initiation logic runs
// without a network.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts signed payment-initiation requests to the gateway form
// endpoint for one environment. The zero value is not usable; construct
// with NewClient or NewClientWithTransport. Safe for concurrent use.
type Client struct {
	doer    Doer
	env     Environment
	breaker *gobreaker.CircuitBreaker
}

// NewClient returns a client for the given environment using an HTTP
// transport with a 30s timeout.
func NewClient(env Environment) *Client {
	return NewClientWithTransport(env, &http.Client{Timeout: defaultTimeout})
}

// NewClientWithTransport returns a client using the supplied transport.
func NewClientWithTransport(env Environment, doer Doer) *Client {
	return &Client{
		doer: doer,
		env:  env,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "esewa-" + env.String(),
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

type formOutcome struct {
	status   int
	finalURL string
}

// Initiate signs the request, posts it to the gateway as URL-encoded form
// fields, and returns the final URL the user should be redirected to. The
// gateway answers the form post with a redirect chain; a final 200 is the
// only success shape. A 5xx, a network failure, or an open breaker wraps
// ErrTransport; any other non-200 final status wraps ErrUnexpectedStatus.
//
// The key is used for signing only and is never retained or logged.
func (c *Client) Initiate(ctx context.Context, req *PaymentRequest, key []byte) (string, error) {
	signature := Sign(req.TotalAmount, req.TransactionUUID, req.ProductCode, key)

	form := url.Values{}
	form.Set("amount", req.Amount)
	form.Set("failure_url", req.FailureURL)
	form.Set("product_delivery_charge", req.ProductDeliveryCharge)
	form.Set("product_service_charge", req.ProductServiceCharge)
	form.Set("product_code", req.ProductCode)
	form.Set("signature", signature)
	form.Set("signed_field_names", req.SignedFieldNames)
	form.Set("success_url", req.SuccessURL)
	form.Set("tax_amount", req.TaxAmount)
	form.Set("total_amount", req.TotalAmount)
	form.Set("transaction_uuid", req.TransactionUUID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.env.FormURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// The breaker only counts transport-level failures (network errors and
	// 5xx). A 4xx means the gateway is up and answering; tripping on those
	// would take a healthy endpoint out of rotation.
	v, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.doer.Do(httpReq)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

		// resp.Request holds the last request of the redirect chain.
		finalURL := httpReq.URL.String()
		if resp.Request != nil && resp.Request.URL != nil {
			finalURL = resp.Request.URL.String()
		}

		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: gateway returned status %d", ErrTransport, resp.StatusCode)
		}
		return formOutcome{status: resp.StatusCode, finalURL: finalURL}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return "", err
	}

	outcome := v.(formOutcome)
	if outcome.status != http.StatusOK {
		return "", fmt.Errorf("%w: expected 200 after redirects, got %d", ErrUnexpectedStatus, outcome.status)
	}
	return outcome.finalURL, nil
}

// Environment reports which gateway environment the client targets.
func (c *Client) Environment() Environment {
	return c.env
}
