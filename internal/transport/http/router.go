package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/reservation-worker/internal/ports"
	"github.com/Gunvolt24/reservation-worker/pkg/httpx"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Handler — служебные эндпоинты воркера.
type Handler struct {
	reads   ports.JournalReadService // nil, если журнал выключен
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — reads может быть nil: тогда маршруты журнала не регистрируются.
func NewHandler(reads ports.JournalReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{reads: reads, log: log, timeout: timeout}
}

// NewRouter — gin-роутер: /ping, /metrics и чтение журнала.
// otelServiceName пустой — без трейсинга запросов.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log, "/ping", "/metrics"))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if h.reads != nil {
		r.GET("/messages", h.listRecent)
		r.GET("/messages/:id", h.getProcessed)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

func (h *Handler) getProcessed(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	rec, err := h.reads.GetProcessed(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetProcessed failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) listRecent(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	page := httpx.ParsePage(c, defaultLimit, maxLimit)

	list, err := h.reads.RecentProcessed(ctx, page.Limit, page.Offset)
	if err != nil {
		h.log.Errorf(ctx, "RecentProcessed failed limit=%d offset=%d err=%v", page.Limit, page.Offset, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// requestContext — контекст запроса с таймаутом обработчика (если задан).
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
