package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamsDefaults(t *testing.T) {
	params, err := ParseParams(AnalysisQuery{})
	require.NoError(t, err)

	assert.Equal(t, PersonaPolicyMaker, params.Persona)
	assert.Equal(t, ScenarioAll, params.Scenario)
	assert.Equal(t, RankByImpact, params.RankMode)
	assert.Equal(t, DefaultCostPerSite, params.CostPerSite)
}

func TestParseParamsClamping(t *testing.T) {
	params, err := ParseParams(AnalysisQuery{
		MinConfidence:   1.7,
		PolicyIntensity: -20,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, params.MinConfidence)
	assert.Equal(t, 0.0, params.PolicyIntensity)
}

func TestParseParamsRejectsUnknownEnums(t *testing.T) {
	_, err := ParseParams(AnalysisQuery{Persona: "MAYOR"})
	assert.Error(t, err)

	_, err = ParseParams(AnalysisQuery{Scenario: "EVERYTHING"})
	assert.Error(t, err)

	_, err = ParseParams(AnalysisQuery{RankMode: "RANDOM"})
	assert.Error(t, err)
}

func TestTransitionRecordID(t *testing.T) {
	a := TransitionRecord{Year: 2021, From: ClassForest, To: ClassBuiltUp, AreaSqKm: 12.5, Confidence: 0.9}
	b := TransitionRecord{Year: 2021, From: ClassForest, To: ClassBuiltUp, AreaSqKm: 99.0, Confidence: 0.1}

	// Identity depends on (from, to, year) only
	assert.Equal(t, a.ID(), b.ID())

	c := TransitionRecord{Year: 2022, From: ClassForest, To: ClassBuiltUp}
	assert.NotEqual(t, a.ID(), c.ID())

	assert.Len(t, a.ID(), 16)
}

func TestTransitionKeyString(t *testing.T) {
	key := TransitionKey{From: ClassForest, To: ClassBuiltUp}
	assert.Equal(t, "Forest -> Built-up", key.String())
}
