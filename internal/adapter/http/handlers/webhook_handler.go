package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	request "sales_associate/internal/adapter/http/dto/request"
	response "sales_associate/internal/adapter/http/dto/response"
	"sales_associate/internal/usecase"
	"sales_associate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid webhook payload", http.StatusBadRequest)

// WebhookHandler handles the external triggers of the status pipeline: form
// submissions, admin approval link clicks, and payment notifications.

type WebhookHandler struct {
	submissions usecase.ISubmissionUseCase
	approvals   usecase.IApprovalUseCase
	payments    usecase.IPaymentUseCase
}

func NewWebhookHandler(submissions usecase.ISubmissionUseCase, approvals usecase.IApprovalUseCase, payments usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{submissions: submissions, approvals: approvals, payments: payments}
}

// FormSubmission serves POST /webhooks/form-submission. Every country site's
// plan-your-trip form posts here.
func (h *WebhookHandler) FormSubmission(c *gin.Context) {
	var payload request.FormSubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	res, err := h.submissions.Submit(c.Request.Context(), usecase.FormSubmission{
		SiteID:      payload.SiteID,
		Journey:     payload.Journey,
		Month:       payload.Month,
		Year:        payload.Year,
		Travelers:   payload.Travelers,
		Days:        payload.Days,
		Language:    payload.Language,
		Budget:      payload.Budget,
		Requests:    payload.Requests,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Email:       payload.Email,
		Phone:       payload.Phone,
		CountryCode: payload.CountryCode,
		Country:     payload.Country,
		HearAboutUs: payload.HearAboutUs,
	})
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubmissionResponse{
		Success:    true,
		ClientID:   res.ClientID,
		SiteID:     res.SiteID,
		IsComplete: res.IsComplete,
		Message:    res.Message,
	})
}

// Approval serves GET /webhooks/approval?action=&clientId=&token=&notes=.
// The admin clicks these links in an email, so every outcome renders a small
// HTML page rather than JSON.
func (h *WebhookHandler) Approval(c *gin.Context) {
	action := c.Query("action")
	clientID := c.Query("clientId")
	token := c.Query("token")
	notes := c.Query("notes")

	if action == "" || clientID == "" {
		renderApprovalPage(c, http.StatusBadRequest, "Error", "Missing required parameters.")
		return
	}

	var err error
	switch action {
	case "approve":
		err = h.approvals.Approve(c.Request.Context(), clientID, token)
	case "reject":
		err = h.approvals.Reject(c.Request.Context(), clientID, token, notes)
	case "resend":
		err = h.approvals.ResendPaymentRequest(c.Request.Context(), clientID, token)
	default:
		renderApprovalPage(c, http.StatusBadRequest, "Error", fmt.Sprintf("Unknown action: %s", action))
		return
	}
	if err != nil {
		status, message := approvalErrorPage(clientID, err)
		renderApprovalPage(c, status, "Error", message)
		return
	}

	switch action {
	case "approve":
		renderApprovalPage(c, http.StatusOK, "Approved ✓",
			fmt.Sprintf("Proposal %s has been approved. The client will receive their proposal with payment link shortly.", clientID))
	case "reject":
		message := fmt.Sprintf("Proposal %s has been rejected.", clientID)
		if notes != "" {
			message += " Notes: " + notes
		}
		renderApprovalPage(c, http.StatusOK, "Rejected", message)
	case "resend":
		renderApprovalPage(c, http.StatusOK, "Sent ✓",
			fmt.Sprintf("The payment request for %s has been re-sent to the client.", clientID))
	}
}

// PaymentNotification serves POST /webhooks/paypal. A payload whose status is
// not COMPLETED is acknowledged with a soft failure and changes nothing.
func (h *WebhookHandler) PaymentNotification(c *gin.Context) {
	var payload request.PaymentNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	err := h.payments.Confirm(c.Request.Context(), usecase.PaymentNotification{
		ClientID:   payload.ClientID,
		PaymentID:  payload.PaymentID,
		Amount:     payload.Amount,
		Currency:   payload.Currency,
		PayerEmail: payload.PayerEmail,
		Status:     payload.Status,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.PaymentWebhookResponse{
			Success:  true,
			ClientID: payload.ClientID,
			Message:  "Payment confirmed and client notified",
		})
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		c.JSON(http.StatusOK, response.PaymentWebhookResponse{
			Success: false,
			Error:   "Invalid payment notification",
		})
	case errors.Is(err, usecase.ErrUnknownSite):
		c.JSON(http.StatusOK, response.PaymentWebhookResponse{
			Success: false,
			Error:   fmt.Sprintf("Unknown client ID format: %s", payload.ClientID),
		})
	case errors.Is(err, usecase.ErrQuoteNotFound):
		c.JSON(http.StatusOK, response.PaymentWebhookResponse{
			Success: false,
			Error:   fmt.Sprintf("Quote not found: %s", payload.ClientID),
		})
	default:
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// RequestApproval serves POST /proposals/request-approval: it emails the
// admin an approve/reject link pair for the proposal.
func (h *WebhookHandler) RequestApproval(c *gin.Context) {
	var payload request.ApprovalRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	if err := h.approvals.RequestApproval(c.Request.Context(), payload.ClientID); err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ApprovalRequestResponse{
		Success:  true,
		ClientID: payload.ClientID,
		Message:  "Approval request sent to admin",
	})
}

func approvalErrorPage(clientID string, err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return http.StatusForbidden, "Invalid or expired link."
	case errors.Is(err, usecase.ErrUnknownSite):
		return http.StatusBadRequest, fmt.Sprintf("Unknown client ID format: %s", clientID)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return http.StatusNotFound, fmt.Sprintf("Proposal not found: %s", clientID)
	default:
		return http.StatusInternalServerError, fmt.Sprintf("Something went wrong: %s", err.Error())
	}
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownSite):
		return pkg.NewDomainErrorSimple("UNKNOWN_SITE", "Unknown site", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

var approvalPageTmpl = template.Must(template.New("approval_page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - Sales Associate</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      display: flex;
      align-items: center;
      justify-content: center;
      min-height: 100vh;
      margin: 0;
      background: #f5f5f5;
    }
    .card {
      background: white;
      padding: 48px;
      border-radius: 8px;
      box-shadow: 0 1px 3px rgba(0,0,0,0.1);
      text-align: center;
      max-width: 400px;
    }
    .status {
      background: {{.BgColor}};
      color: {{.TextColor}};
      padding: 12px 24px;
      border-radius: 4px;
      font-size: 18px;
      font-weight: 600;
      margin-bottom: 16px;
      display: inline-block;
    }
    .message {
      color: #333;
      line-height: 1.6;
    }
    .close {
      margin-top: 24px;
      color: #666;
      font-size: 14px;
    }
  </style>
</head>
<body>
  <div class="card">
    <div class="status">{{.Title}}</div>
    <p class="message">{{.Message}}</p>
    <p class="close">You can close this window.</p>
  </div>
</body>
</html>
`))

type approvalPageData struct {
	Title     string
	Message   string
	BgColor   template.CSS
	TextColor template.CSS
}

func renderApprovalPage(c *gin.Context, status int, title, message string) {
	bg, text := "#fefce8", "#854d0e"
	switch {
	case strings.Contains(title, "✓"):
		bg, text = "#f0fdf4", "#166534"
	case title == "Rejected":
		bg, text = "#fef2f2", "#991b1b"
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = approvalPageTmpl.Execute(c.Writer, approvalPageData{
		Title:     title,
		Message:   message,
		BgColor:   template.CSS(bg),
		TextColor: template.CSS(text),
	})
}
