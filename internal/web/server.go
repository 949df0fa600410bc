// Package web is the demo HTTP front end over the esewa package: one route
// to kick off a payment, one to receive and validate the gateway callback,
// and one to acknowledge the failure redirect.
package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esewa-payment/esewa"
	"esewa-payment/internal/config"
)

// Initiator is the slice of the esewa client the handlers use; tests plug
// in their own implementation.
type Initiator interface {
	Initiate(ctx context.Context, req *esewa.PaymentRequest, key []byte) (string, error)
}

// Server wires the routes over a configured client.
type Server struct {
	cfg    *config.Config
	client Initiator
	router *gin.Engine
	key    []byte
}

// NewServer builds the router. The secret key is taken from cfg once at
// construction and handed to the core per call; nothing here ever logs it.
func NewServer(cfg *config.Config, client Initiator) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	s := &Server{
		cfg:    cfg,
		client: client,
		router: router,
		key:    []byte(cfg.SecretKey),
	}

	router.GET("/", s.handleInitiate)
	router.GET("/success", s.handleSuccess)
	router.GET("/failure", s.handleFailure)
	router.GET("/healthz", s.handleHealthz)

	return s
}

// Handler exposes the router for http.Server and for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger stamps every request with an id and logs the outcome.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		if status >= 400 {
			log.Printf("HTTP_ERROR: request_id=%s method=%s path=%s status=%d duration=%v ip=%s",
				requestID, c.Request.Method, c.Request.URL.Path, status, duration, c.ClientIP())
		} else {
			log.Printf("HTTP_OK: request_id=%s method=%s path=%s status=%d duration=%v",
				requestID, c.Request.Method, c.Request.URL.Path, status, duration)
		}
	}
}
