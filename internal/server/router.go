package server

import (
	"ib-compliance/internal/config"
	"ib-compliance/internal/handlers"
	"ib-compliance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func NewRouter(cfg *config.Config, h *handlers.Handler, log *zap.Logger) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(middleware.RequestLogger(log))

	// HEALTHCHECK + МЕТРИКИ
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// КАТАЛОГ МЕР
	api.GET("/domains", h.ListDomains)
	api.GET("/controls", h.ListControls)
	api.GET("/controls/:id", h.GetControl)
	api.PATCH("/controls/:id", h.UpdateControl)

	// СТАТИСТИКА СООТВЕТСТВИЯ
	api.GET("/stats/overall", h.OverallStats)
	api.GET("/stats/domains", h.DomainStats)

	// РЕЕСТР РИСКОВ
	api.GET("/risks", h.ListRisks)
	api.POST("/risks", h.CreateRisk)
	api.GET("/risks/summary", h.RiskSummary)
	api.GET("/risks/matrix", h.RiskMatrix)
	api.GET("/risks/:id", h.GetRisk)
	api.PATCH("/risks/:id", h.UpdateRisk)
	api.DELETE("/risks/:id", h.DeleteRisk)

	return r, nil
}
