package routes

import (
	"conserta_ja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs = "/jobs"
)

func addJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	quoteHandler *handlers.QuoteHandler,
	handshakeHandler *handlers.HandshakeHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.POST("/:job_id/accept", jobHandler.AcceptJob)
		jobs.POST("/:job_id/cancel", jobHandler.CancelJob)

		jobs.POST("/:job_id/quote", quoteHandler.SubmitQuote)
		jobs.POST("/:job_id/quote/decision", quoteHandler.RespondToQuote)

		jobs.POST("/:job_id/codes/start", handshakeHandler.IssueStartCode)
		jobs.POST("/:job_id/codes/start/verify", handshakeHandler.VerifyStartCode)
		jobs.POST("/:job_id/codes/end", handshakeHandler.IssueEndCode)
		jobs.POST("/:job_id/codes/end/verify", handshakeHandler.VerifyEndCode)

		jobs.POST("/:job_id/payment", paymentHandler.CollectPayment)

		jobs.POST("/:job_id/dispute", jobHandler.FlagDispute)
		jobs.POST("/:job_id/dispute/resolve", jobHandler.ResolveDispute)
		jobs.POST("/:job_id/payout/release", jobHandler.ReleasePayout)
	}
}
