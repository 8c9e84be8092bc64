package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	Amount float64 `json:"amount"`
}

type verifyPaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

// CreateOrder registers a payment order with the gateway. The amount
// arrives in major units and is converted to minor units before leaving
// the process.
func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	resp, err := s.paymentSvc.CreateOrder(c.Request.Context(), req.Amount)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyPayment reports whether the gateway captured the payment. A
// well-formed non-captured status is success=false, not an error.
func (s *Server) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	resp, err := s.paymentSvc.VerifyPayment(c.Request.Context(), req.PaymentID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
