package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/landsight/lulc-backend-go/internal/models"
	"github.com/landsight/lulc-backend-go/internal/service"
	"github.com/landsight/lulc-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for derived metrics
type AnalysisHandler struct {
	analysisService    *service.AnalysisService
	defaultCostPerSite float64
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService, defaultCostPerSite float64) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService:    analysisService,
		defaultCostPerSite: defaultCostPerSite,
	}
}

// snapshot binds and validates query parameters, then recomputes (or
// reuses) the derivation snapshot
func (h *AnalysisHandler) snapshot(c *gin.Context) (*models.Snapshot, bool) {
	var query models.AnalysisQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return nil, false
	}
	if query.CostPerSite <= 0 {
		query.CostPerSite = h.defaultCostPerSite
	}

	params, err := models.ParseParams(query)
	if err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}

	snapshot, err := h.analysisService.Snapshot(params)
	if err != nil {
		response.InternalError(c, err.Error())
		return nil, false
	}
	return snapshot, true
}

// GetSnapshot handles GET /api/v1/analysis/snapshot
// Returns every derived structure of one recompute in a single payload.
func (h *AnalysisHandler) GetSnapshot(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot)
	}
}

// GetEcoRisk handles GET /api/v1/analysis/eco-risk
// A null payload means insufficient data (fewer than 2 distinct years).
func (h *AnalysisHandler) GetEcoRisk(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.EcoRisk)
	}
}

// GetPolicy handles GET /api/v1/analysis/policy
func (h *AnalysisHandler) GetPolicy(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Policy)
	}
}

// GetProjection handles GET /api/v1/analysis/projection
func (h *AnalysisHandler) GetProjection(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Projection)
	}
}

// GetTrust handles GET /api/v1/analysis/trust
func (h *AnalysisHandler) GetTrust(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Trust)
	}
}

// GetEvolutions handles GET /api/v1/analysis/evolutions
func (h *AnalysisHandler) GetEvolutions(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Evolutions)
	}
}

// GetActions handles GET /api/v1/analysis/actions
func (h *AnalysisHandler) GetActions(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Actions)
	}
}

// GetAlerts handles GET /api/v1/analysis/alerts
func (h *AnalysisHandler) GetAlerts(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Alerts)
	}
}

// GetPriorities handles GET /api/v1/analysis/priorities
func (h *AnalysisHandler) GetPriorities(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Priorities)
	}
}

// GetSurvey handles GET /api/v1/analysis/survey
func (h *AnalysisHandler) GetSurvey(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Survey)
	}
}

// GetNarrative handles GET /api/v1/analysis/narrative
func (h *AnalysisHandler) GetNarrative(c *gin.Context) {
	if snapshot, ok := h.snapshot(c); ok {
		response.Success(c, snapshot.Narrative)
	}
}

// GetTrend handles GET /api/v1/analysis/trend?targetClass=Built-up
func (h *AnalysisHandler) GetTrend(c *gin.Context) {
	class := c.DefaultQuery("targetClass", string(models.ClassBuiltUp))

	trend, err := h.analysisService.Trend(models.LandClass(class))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, trend)
}

// GetVelocity handles GET /api/v1/analysis/velocity?targetClass=Built-up
func (h *AnalysisHandler) GetVelocity(c *gin.Context) {
	class := c.DefaultQuery("targetClass", string(models.ClassBuiltUp))

	velocity, stability, err := h.analysisService.Velocity(models.LandClass(class))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{
		"velocity":  velocity,
		"stability": stability,
	})
}
