package routes

import (
	"movequote/internal/adapter/http/handlers"
	"movequote/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes        = "/quotes"
	PathQuoteRequests = "/quote-requests"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.MoverQuoteHandler, requestHandler *handlers.QuoteRequestHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:quote_id/customer", quoteHandler.GetQuoteForCustomer)
		quotes.GET("/:quote_id/mover", quoteHandler.GetQuoteForMover)
	}

	moverQuotes := rg.Group(PathQuotes, middleware.RequireUser())
	{
		moverQuotes.POST("", quoteHandler.SubmitQuote)
		moverQuotes.GET("/mover", quoteHandler.ListQuotesForMover)
	}

	requests := rg.Group(PathQuoteRequests, middleware.RequireUser())
	{
		requests.GET("", quoteHandler.ListOpenQuoteRequests)
		requests.POST("", requestHandler.CreateQuoteRequest)
		requests.GET("/latest", requestHandler.GetLatestQuoteRequest)
		requests.POST("/:quote_request_id/targets", requestHandler.TargetMover)
		requests.POST("/:quote_request_id/reject", quoteHandler.RejectQuote)
	}
}
