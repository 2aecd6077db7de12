package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fireclub-api/internal/logging"
	"fireclub-api/internal/models"
	"fireclub-api/internal/service"
)

type StatusHandler struct {
	service *service.StatusService
	logger  *logging.ContextLogger
	tracer  trace.Tracer
}

func NewStatusHandler(service *service.StatusService, logger *logging.ContextLogger) *StatusHandler {
	return &StatusHandler{
		service: service,
		logger:  logger,
		tracer:  otel.Tracer("status-handler"),
	}
}

func (h *StatusHandler) CreateStatusCheck(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "status.handler.create")
	defer span.End()

	var req models.CreateStatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	check, err := h.service.Create(ctx, req.ClientName)
	if err != nil {
		h.logger.ErrorWithTracing(ctx, "Failed to create status check", err, logrus.Fields{
			"client_name": req.ClientName,
			"endpoint":    "POST /api/status",
		})
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record status check"})
		return
	}

	span.SetAttributes(
		attribute.String("status.id", check.ID),
		attribute.Bool("success", true),
	)
	c.JSON(http.StatusCreated, check)
}

func (h *StatusHandler) GetStatusChecks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "status.handler.list")
	defer span.End()

	checks, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorWithTracing(ctx, "Failed to list status checks", err, logrus.Fields{
			"endpoint": "GET /api/status",
		})
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve status checks"})
		return
	}

	span.SetAttributes(
		attribute.Int("status.count", len(checks)),
		attribute.Bool("success", true),
	)
	c.JSON(http.StatusOK, checks)
}
