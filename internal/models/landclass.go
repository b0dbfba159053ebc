package models

import "fmt"

// LandClass represents a LULC (land use / land cover) class
type LandClass string

// LandClass constants
const (
	ClassForest      LandClass = "Forest"
	ClassWater       LandClass = "Water"
	ClassBuiltUp     LandClass = "Built-up"
	ClassAgriculture LandClass = "Agriculture"
	ClassBarren      LandClass = "Barren"
)

// Persona represents a stakeholder viewpoint that reweights ranking
// and narrative output without changing the underlying metrics
type Persona string

// Persona constants
const (
	PersonaUrbanPlanner         Persona = "URBAN_PLANNER"
	PersonaEnvironmentalOfficer Persona = "ENVIRONMENTAL_OFFICER"
	PersonaPolicyMaker          Persona = "POLICY_MAKER"
)

// ParsePersona validates a persona string from the API boundary
func ParsePersona(s string) (Persona, error) {
	switch Persona(s) {
	case PersonaUrbanPlanner, PersonaEnvironmentalOfficer, PersonaPolicyMaker:
		return Persona(s), nil
	case "":
		return PersonaPolicyMaker, nil
	default:
		return "", fmt.Errorf("unknown persona: %q", s)
	}
}

// Scenario represents a record filter focus
type Scenario string

// Scenario constants
const (
	ScenarioAll        Scenario = "ALL"
	ScenarioUrbanFocus Scenario = "URBAN_FOCUS"
	ScenarioEcoFocus   Scenario = "ECO_FOCUS"
)

// ParseScenario validates a scenario string from the API boundary
func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case ScenarioAll, ScenarioUrbanFocus, ScenarioEcoFocus:
		return Scenario(s), nil
	case "":
		return ScenarioAll, nil
	default:
		return "", fmt.Errorf("unknown scenario: %q", s)
	}
}

// RankMode selects the sort key for prioritized records
type RankMode string

// RankMode constants
const (
	RankByImpact     RankMode = "IMPACT"
	RankByArea       RankMode = "AREA"
	RankByConfidence RankMode = "CONFIDENCE"
)

// ParseRankMode validates a rank mode string from the API boundary
func ParseRankMode(s string) (RankMode, error) {
	switch RankMode(s) {
	case RankByImpact, RankByArea, RankByConfidence:
		return RankMode(s), nil
	case "":
		return RankByImpact, nil
	default:
		return "", fmt.Errorf("unknown rank mode: %q", s)
	}
}
