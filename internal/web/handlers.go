package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"esewa-payment/esewa"
)

// handleInitiate builds a payment request from the query parameters (demo
// defaults: 100 + 10 tax), signs and posts it, and redirects the browser to
// the gateway checkout page. Initiation failures surface here; they are a
// different condition than a validation failure on /success — one blocks
// starting a payment, the other blocks trusting a finished one.
func (s *Server) handleInitiate(c *gin.Context) {
	amount := c.DefaultQuery("amount", "100")
	tax := c.DefaultQuery("tax_amount", "10")
	service := c.DefaultQuery("product_service_charge", "0")
	delivery := c.DefaultQuery("product_delivery_charge", "0")

	req, err := esewa.NewPaymentRequest(amount, tax, service, delivery,
		s.cfg.ProductCode, s.cfg.SuccessURL, s.cfg.FailureURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redirectURL, err := s.client.Initiate(c.Request.Context(), req, s.key)
	if err != nil {
		log.Printf("INITIATE_FAILED: transaction_uuid=%s err=%v", req.TransactionUUID, err)
		switch {
		case errors.Is(err, esewa.ErrUnexpectedStatus):
			c.JSON(http.StatusBadGateway, gin.H{"error": "gateway rejected the payment request"})
		case errors.Is(err, esewa.ErrTransport):
			c.JSON(http.StatusBadGateway, gin.H{"error": "gateway unreachable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("INITIATE_OK: transaction_uuid=%s total_amount=%s", req.TransactionUUID, req.TotalAmount)
	c.Redirect(http.StatusFound, redirectURL)
}

// handleSuccess receives the gateway callback redirect, decodes the blob
// from the data query parameter, and returns the validation result. An
// invalid signature is still a 200: it is a representable outcome the
// caller must act on, not a protocol failure.
func (s *Server) handleSuccess(c *gin.Context) {
	blob := c.Query("data")
	if blob == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing data query parameter"})
		return
	}

	result, err := esewa.ValidateEncoded(blob, s.key)
	if err != nil {
		log.Printf("CALLBACK_DECODE_FAILED: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("CALLBACK_VALIDATED: transaction_uuid=%s status=%s signature_valid=%v",
		result.Response.TransactionUUID, result.Response.Status, result.SignatureValid)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleFailure(c *gin.Context) {
	c.String(http.StatusOK, "payment failed or was cancelled")
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": s.cfg.Environment,
	})
}
