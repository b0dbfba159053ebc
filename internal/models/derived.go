package models

// TrendSeries holds per-class yearly values aligned to the sorted
// distinct set of years present in the time series. Missing (year,
// class) pairs carry 0 by definition.
type TrendSeries struct {
	Class       LandClass `json:"lulc_class"`
	Years       []int     `json:"years"`
	Areas       []float64 `json:"areas"`
	Confidences []float64 `json:"confidences"`
}

// Len returns the number of yearly points in the series
func (t TrendSeries) Len() int {
	return len(t.Years)
}

// EcoTrend constants
const (
	EcoTrendStable           = "STABLE"
	EcoTrendDeclining        = "DECLINING"
	EcoTrendRapidDegradation = "RAPID_DEGRADATION"
	EcoTrendRecovering       = "RECOVERING"
)

// EcoRiskAssessment represents baseline-vs-current ecological loss
// for the Forest and Water classes
type EcoRiskAssessment struct {
	ForestLoss    float64 `json:"forest_loss"`
	WaterLoss     float64 `json:"water_loss"`
	TotalEcoLoss  float64 `json:"total_eco_loss"`
	Trend         string  `json:"trend"` // EcoTrend constants
	ForestLossPct float64 `json:"forest_loss_pct"`
	WaterLossPct  float64 `json:"water_loss_pct"`
}

// VelocityStatus constants
const (
	VelocityRapidAcceleration = "RAPID_ACCELERATION"
	VelocityAccelerating      = "ACCELERATING"
	VelocityStable            = "STABLE"
	VelocityDecelerating      = "DECELERATING"
	VelocityRapidDeceleration = "RAPID_DECELERATION"
)

// VelocityReport holds first and second differences of a trend series
type VelocityReport struct {
	Velocity     float64 `json:"velocity_sqkm_per_year"`
	Acceleration float64 `json:"acceleration_sqkm_per_year2"`
	Status       string  `json:"status"` // VelocityStatus constants
}

// StabilityLevel constants
const (
	StabilityHigh     = "HIGH_STABILITY"
	StabilityModerate = "MODERATE_STABILITY"
	StabilityUnstable = "HIGHLY_UNSTABLE"
)

// ConfidenceStability summarizes the spread of detection confidence
// for one class across years
type ConfidenceStability struct {
	StdDev float64 `json:"std_dev"`
	Score  float64 `json:"score"` // 1 - stddev
	Level  string  `json:"level"` // StabilityLevel constants
}

// TrustLevel constants
const (
	TrustHigh     = "HIGH_TRUST"
	TrustModerate = "MODERATE_TRUST"
	TrustLow      = "LOW_TRUST"
)

// TrustScore represents the composite 0-100 data reliability index
type TrustScore struct {
	StabilityScore   float64 `json:"stability_score"`
	ConsistencyScore float64 `json:"consistency_score"`
	MagnitudeScore   float64 `json:"magnitude_score"`
	Score            int     `json:"score"` // 0-100
	Level            string  `json:"level"` // TrustLevel constants
}

// PolicyAssessment constants
const (
	PolicyEffectiveContainment = "EFFECTIVE_CONTAINMENT"
	PolicyFailure              = "POLICY_FAILURE"
	PolicySteadyState          = "STEADY_STATE"
	PolicyNeutral              = "NEUTRAL"
)

// PolicyEvaluation compares pre- and post-intervention growth rates
type PolicyEvaluation struct {
	PreRate    float64 `json:"pre_rate"`
	PostRate   float64 `json:"post_rate"`
	RateChange float64 `json:"rate_change"`
	Assessment string  `json:"assessment"` // PolicyAssessment constants
	Summary    string  `json:"summary"`
}

// RiskLevel constants
const (
	RiskLow      = "LOW"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

// FutureProjection extrapolates Built-up growth forward under a
// policy-intensity parameter. SavedArea is the explicit counterfactual
// (unmitigated minus mitigated increase) and is nil at intensity 0.
type FutureProjection struct {
	TargetYear        int      `json:"target_year"`
	BaselineRate      float64  `json:"baseline_rate"`
	AdjustedRate      float64  `json:"adjusted_rate"`
	ProjectedArea     float64  `json:"projected_area"`
	ProjectedIncrease float64  `json:"projected_increase"`
	RiskLevel         string   `json:"risk_level"` // RiskLevel constants
	SavedArea         *float64 `json:"saved_area,omitempty"`
}

// TrendLabel constants
const (
	TrendAccelerating = "ACCELERATING"
	TrendDecelerating = "DECELERATING"
	TrendStable       = "STABLE"
)

// AnomalyLevel constants
const (
	AnomalyNormal   = "NORMAL"
	AnomalyElevated = "ELEVATED"
	AnomalySurge    = "SURGE"
)

// ReadinessLabel constants
const (
	ReadinessFieldValidation = "FIELD_VALIDATION"
	ReadinessPolicyReview    = "POLICY_REVIEW"
	ReadinessReadyForAction  = "READY_FOR_ACTION"
)

// TransitionEvolution holds the multi-year history and derived
// metrics for one (from, to) transition pair, including the CPRI
// (Composite Policy Readiness Index) used for ranking.
type TransitionEvolution struct {
	Key              TransitionKey      `json:"key"`
	History          []TransitionRecord `json:"history"` // year ascending
	TotalVolume      float64            `json:"total_volume"`
	LatestFlow       float64            `json:"latest_flow"`
	Trend            string             `json:"trend"` // TrendLabel constants
	DeviationRatio   float64            `json:"deviation_ratio"`
	Anomaly          string             `json:"anomaly"` // AnomalyLevel constants
	ConfidenceStable bool               `json:"confidence_stable"`
	CPRI             float64            `json:"cpri"`      // 0-1
	Readiness        string             `json:"readiness"` // ReadinessLabel constants
}

// Latest returns the most recent record of the evolution history
func (e TransitionEvolution) Latest() TransitionRecord {
	return e.History[len(e.History)-1]
}

// Urgency constants
const (
	UrgencyImmediate = "IMMEDIATE"
	UrgencyHigh      = "HIGH"
	UrgencyCritical  = "CRITICAL" // critical uncertainty, not top priority
)

// AuditEntry is one line of a recommendation's audit trail:
// a label, the formula or rule applied, and the resulting value.
type AuditEntry struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Value  string `json:"value"`
}

// RecommendedAction represents a persona-tailored intervention for
// one transition evolution, with a reproducible audit trail.
type RecommendedAction struct {
	Evolution    TransitionEvolution `json:"evolution"`
	Action       string              `json:"action"`
	Urgency      string              `json:"urgency"` // Urgency constants
	Department   string              `json:"department"`
	ReadinessPct int                 `json:"readiness_pct"`
	AuditTrail   []AuditEntry        `json:"audit_trail"`
}

// Alert severity constants
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert represents one triggered governance rule
type Alert struct {
	Severity    string             `json:"severity"` // Severity constants
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Records     []TransitionRecord `json:"records,omitempty"`
}

// PrioritizedRecord pairs a transition record with its persona
// weight and impact score
type PrioritizedRecord struct {
	Record      TransitionRecord `json:"record"`
	Weight      float64          `json:"weight"`
	ImpactScore float64          `json:"impact_score"`
}

// SurveyTask represents one candidate field-survey site
type SurveyTask struct {
	ID         string    `json:"id"`
	From       LandClass `json:"from"`
	To         LandClass `json:"to"`
	Confidence float64   `json:"confidence"`
	AreaSqKm   float64   `json:"area_sq_km"`
}

// SurveyAllocation represents a budget-constrained selection of
// field-survey tasks
type SurveyAllocation struct {
	Selected      []SurveyTask `json:"selected"`
	DeferredCount int          `json:"deferred_count"`
	TotalCost     float64      `json:"total_cost"`
	ShortfallCost float64      `json:"shortfall_cost"`
	MaxSites      int          `json:"max_sites"`
}

// Narrative is the persona-phrased headline story over the top
// transition evolution. Purely presentational.
type Narrative struct {
	Persona  Persona       `json:"persona"`
	Key      TransitionKey `json:"key"`
	Headline string        `json:"headline"`
	Body     string        `json:"body"`
}

// Snapshot is the full output boundary of one recompute. Nil
// pointers encode the "insufficient data" sentinel; consumers must
// treat them as non-fatal.
type Snapshot struct {
	EcoRisk     *EcoRiskAssessment    `json:"eco_risk"`
	Policy      *PolicyEvaluation     `json:"policy"`
	Projection  *FutureProjection     `json:"projection"`
	Velocity    *VelocityReport       `json:"velocity"`
	Stability   *ConfidenceStability  `json:"stability"`
	Trust       *TrustScore           `json:"trust"`
	Evolutions  []TransitionEvolution `json:"evolutions"`
	Actions     []RecommendedAction   `json:"actions"`
	Alerts      []Alert               `json:"alerts"`
	Priorities  []PrioritizedRecord   `json:"priorities"`
	Survey      *SurveyAllocation     `json:"survey"`
	Narrative   *Narrative            `json:"narrative"`
	GeneratedAt string                `json:"generated_at"`
}
