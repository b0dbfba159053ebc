package models

// AnalysisQuery represents raw analysis parameters bound from the
// HTTP query string. It is validated into an immutable Params value
// before reaching the engine.
type AnalysisQuery struct {
	Persona         string  `form:"persona"`         // URBAN_PLANNER, ENVIRONMENTAL_OFFICER, POLICY_MAKER
	Scenario        string  `form:"scenario"`        // ALL, URBAN_FOCUS, ECO_FOCUS
	MinConfidence   float64 `form:"minConfidence"`   // 0-1
	PolicyIntensity float64 `form:"policyIntensity"` // 0-100
	Budget          float64 `form:"budget"`          // survey budget, currency units
	CostPerSite     float64 `form:"costPerSite"`     // cost of one field survey
	RankMode        string  `form:"rankMode"`        // IMPACT, AREA, CONFIDENCE
	TargetClass     string  `form:"targetClass"`     // class for trend/velocity queries
}

// Params is the immutable parameter set driving one recompute. A
// parameter change produces a new Params value, never an in-place
// mutation.
type Params struct {
	Persona         Persona
	Scenario        Scenario
	MinConfidence   float64
	PolicyIntensity float64
	Budget          float64
	CostPerSite     float64
	RankMode        RankMode
}

// DefaultCostPerSite is applied when the query omits costPerSite
const DefaultCostPerSite = 5000.0

// ParseParams validates an AnalysisQuery into Params, applying
// defaults and clamping numeric ranges
func ParseParams(q AnalysisQuery) (Params, error) {
	persona, err := ParsePersona(q.Persona)
	if err != nil {
		return Params{}, err
	}
	scenario, err := ParseScenario(q.Scenario)
	if err != nil {
		return Params{}, err
	}
	rankMode, err := ParseRankMode(q.RankMode)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		Persona:         persona,
		Scenario:        scenario,
		MinConfidence:   clamp(q.MinConfidence, 0, 1),
		PolicyIntensity: clamp(q.PolicyIntensity, 0, 100),
		Budget:          q.Budget,
		CostPerSite:     q.CostPerSite,
		RankMode:        rankMode,
	}
	if p.CostPerSite <= 0 {
		p.CostPerSite = DefaultCostPerSite
	}
	return p, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
