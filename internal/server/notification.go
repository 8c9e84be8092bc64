package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	notificationdomain "github.com/paydesk/paydesk/internal/notification/domain"
)

type sendEmailRequest struct {
	Email        string  `json:"email"`
	CustomerName string  `json:"customer_name"`
	OrderID      string  `json:"order_id"`
	OrderDate    string  `json:"order_date"`
	ExpiryDate   string  `json:"expiry_date"`
	TotalAmount  float64 `json:"total_amount"`
}

// SendEmail relays an order confirmation through the email provider.
// Provider rejections keep their upstream status code.
func (s *Server) SendEmail(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	resp, err := s.notificationSvc.SendOrderConfirmation(c.Request.Context(), notificationdomain.SendConfirmationRequest{
		Email:        strings.TrimSpace(req.Email),
		CustomerName: strings.TrimSpace(req.CustomerName),
		OrderID:      strings.TrimSpace(req.OrderID),
		OrderDate:    strings.TrimSpace(req.OrderDate),
		ExpiryDate:   strings.TrimSpace(req.ExpiryDate),
		TotalAmount:  req.TotalAmount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
