package api

import (
	"net/http"

	callsHandler "github.com/rheadsz/voice-ai-agent/internal/calls/handler"
	intentHandler "github.com/rheadsz/voice-ai-agent/internal/intent/handler"
	leadsHandler "github.com/rheadsz/voice-ai-agent/internal/leads/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router        *gin.RouterGroup
	callsHandler  callsHandler.Handler
	intentHandler intentHandler.Handler
	leadsHandler  leadsHandler.Handler
}

func New(router *gin.RouterGroup, callsHandler callsHandler.Handler, intentHandler intentHandler.Handler,
	leadsHandler leadsHandler.Handler) API {
	return API{
		router:        router,
		callsHandler:  callsHandler,
		intentHandler: intentHandler,
		leadsHandler:  leadsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.POST("/start-call", a.callsHandler.HandleStartCall)
	a.router.POST("/intent/report", a.intentHandler.HandleReportIntent)
	a.router.POST("/leads", a.leadsHandler.HandleUpsertLead)
	a.router.GET("/leads", a.leadsHandler.HandleListLeads)
}

func (a *API) Health() {
	a.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}
