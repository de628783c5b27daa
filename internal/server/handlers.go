package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Skufu/vitalrisk/internal/metrics"
	"github.com/Skufu/vitalrisk/internal/report"
	"github.com/Skufu/vitalrisk/internal/risk"
)

type assessmentResponse struct {
	ID         string             `json:"id"`
	AssessedAt time.Time          `json:"assessedAt"`
	Profile    risk.HealthProfile `json:"profile"`
	Result     risk.RiskResult    `json:"result"`
}

type exampleSummary struct {
	report.Example
	Tier  risk.Tier `json:"tier"`
	Score int       `json:"score"`
}

type assessmentHandler struct {
	logger  *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

func (h *assessmentHandler) create(c *gin.Context) {
	var raw risk.RawProfile
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": "request body must be a JSON profile"})
		return
	}

	profile, result, err := risk.AssessRaw(raw)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, profile, result)
}

func (h *assessmentHandler) listExamples(c *gin.Context) {
	examples := report.Examples()
	out := make([]exampleSummary, 0, len(examples))
	for _, ex := range examples {
		result, err := risk.Assess(ex.Profile)
		if err != nil {
			h.fail(c, err)
			return
		}
		out = append(out, exampleSummary{Example: ex, Tier: result.Tier, Score: result.Score})
	}
	c.JSON(http.StatusOK, gin.H{"examples": out})
}

func (h *assessmentHandler) assessExample(c *gin.Context) {
	ex, ok := report.LookupExample(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "example_not_found", "available": report.ExampleNames()})
		return
	}

	result, err := risk.Assess(ex.Profile)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, ex.Profile, result)
}

func (h *assessmentHandler) respond(c *gin.Context, profile risk.HealthProfile, result risk.RiskResult) {
	h.metrics.ObserveResult(result)
	now := h.now()

	if c.Query("format") == "markdown" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(report.Markdown(profile, result, now)))
		return
	}

	c.JSON(http.StatusOK, assessmentResponse{
		ID:         uuid.NewString(),
		AssessedAt: now.UTC(),
		Profile:    profile,
		Result:     result,
	})
}

func (h *assessmentHandler) fail(c *gin.Context, err error) {
	var verr *risk.ValidationError
	if errors.As(err, &verr) {
		h.metrics.ObserveRejection(verr)
		h.logger.Debug("profile rejected",
			zap.String("kind", string(verr.Kind)),
			zap.String("field", verr.Field))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"kind":    verr.Kind,
			"field":   verr.Field,
			"message": verr.Error(),
		})
		return
	}

	h.logger.Error("assessment failed", zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}
