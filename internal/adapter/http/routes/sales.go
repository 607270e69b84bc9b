package routes

import (
	"sales_associate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathProposals = "/proposals"
	PathWebhooks  = "/webhooks"
)

func addSalesRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, webhookHandler *handlers.WebhookHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("/update", quoteHandler.UpdateQuote)
		quotes.POST("/delete", quoteHandler.DeleteQuote)
		quotes.POST("/duplicate", quoteHandler.DuplicateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.GET("", quoteHandler.ListProposals)
		proposals.POST("/request-approval", webhookHandler.RequestApproval)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/form-submission", webhookHandler.FormSubmission)
		webhooks.GET("/approval", webhookHandler.Approval)
		webhooks.POST("/paypal", webhookHandler.PaymentNotification)
	}

	rg.GET("/notifications/:clientId", quoteHandler.ListNotifications)
}
