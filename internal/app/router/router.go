package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/app/handlers"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/app/middleware"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/config"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/downstream"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/token"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/service"
)

func SetupRouter(cfg *config.AppConfig) *gin.Engine {
	r := gin.New()
	meter := otel.Meter(cfg.Otel.ServiceName)
	r.Use(middleware.Recovery())
	r.Use(otelgin.Middleware(cfg.Otel.ServiceName))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	partner := downstream.NewLeadProsperClient(cfg.LeadProsper.HTTPTimeout)
	grants := token.NewIssuer(cfg.Token.Secret)
	leadService := service.NewLeadService(partner, grants)

	leadHandler := handlers.NewLeadHandler(leadService, cfg.IsProduction())
	confirmationHandler := handlers.NewConfirmationHandler(grants)
	healthCheckHandler := handlers.NewHealthCheckHandler()

	r.POST("/api/leads/refinance", leadHandler.SubmitRefinance)
	r.POST("/api/leads/purchase", leadHandler.SubmitPurchase)
	r.GET("/api/thankyou/verify", confirmationHandler.Verify)
	r.GET("/api/health", healthCheckHandler.HealthCheck)

	return r
}
