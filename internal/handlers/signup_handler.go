package handlers

import (
	"context"
	"errors"
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

const (
	signupWelcomeMessage   = "Welcome to the Fire Club! 🔥 You'll receive exclusive tips and offers soon."
	signupDuplicateMessage = "Email already registered for Fire Club updates"
	genericFailureMessage  = "Something went wrong. Please try again."
)

type SignupHandler struct {
	service *service.SignupService
	logger  *logging.ContextLogger
	tracer  trace.Tracer
}

func NewSignupHandler(service *service.SignupService, logger *logging.ContextLogger) *SignupHandler {
	return &SignupHandler{
		service: service,
		logger:  logger,
		tracer:  otel.Tracer("signup-handler"),
	}
}

func (h *SignupHandler) CreateSignup(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "signup.handler.create")
	defer span.End()

	var req models.CreateSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	signup, err := h.service.Create(ctx, &req)
	if err != nil {
		h.respondCreateError(c, ctx, span, err)
		return
	}

	span.SetAttributes(
		attribute.String("signup.id", signup.ID),
		attribute.Bool("success", true),
	)
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: signupWelcomeMessage,
		Data:    signup,
	})
}

// Validation problems and duplicates come back as structured 400s; anything
// else is a generic 500 with the real cause logged server-side only.
func (h *SignupHandler) respondCreateError(c *gin.Context, ctx context.Context, span trace.Span, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		span.SetAttributes(attribute.String("reject.reason", "validation"))
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: verr.Msg,
		})
	case errors.Is(err, models.ErrEmailTaken):
		span.SetAttributes(attribute.String("reject.reason", "duplicate"))
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: signupDuplicateMessage,
		})
	default:
		h.logger.ErrorWithTracing(ctx, "Signup failed", err, logrus.Fields{
			"endpoint": "POST /api/signup",
		})
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Message: genericFailureMessage,
		})
	}
}

func (h *SignupHandler) GetSignups(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "signup.handler.list")
	defer span.End()

	signups, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorWithTracing(ctx, "Failed to list signups", err, logrus.Fields{
			"endpoint": "GET /api/signups",
		})
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Message: "Failed to retrieve signups",
		})
		return
	}

	span.SetAttributes(
		attribute.Int("signup.count", len(signups)),
		attribute.Bool("success", true),
	)
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Signups retrieved successfully",
		Data:    signups,
	})
}
