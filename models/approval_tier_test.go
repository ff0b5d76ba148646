package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func tier(name string, thresholds ...ApprovalThreshold) ApprovalTier {
	return ApprovalTier{Name: name, IsActive: true, Thresholds: thresholds}
}

func amountRule(op string, value float64, end *float64) ApprovalThreshold {
	return ApprovalThreshold{Kind: ThresholdKindAmount, Operator: op, Value: value, ValueEnd: end}
}

func TestApprovalThresholdMatches(t *testing.T) {
	tests := []struct {
		name      string
		threshold ApprovalThreshold
		amount    float64
		want      bool
	}{
		{"less than below", amountRule(OpLessThan, 1000, nil), 999.99, true},
		{"less than equal", amountRule(OpLessThan, 1000, nil), 1000, false},
		{"greater than above", amountRule(OpGreaterThan, 5000, nil), 5000.01, true},
		{"greater than equal", amountRule(OpGreaterThan, 5000, nil), 5000, false},
		{"between lower bound", amountRule(OpBetween, 1000, floatPtr(5000)), 1000, true},
		{"between upper bound", amountRule(OpBetween, 1000, floatPtr(5000)), 5000, true},
		{"between outside", amountRule(OpBetween, 1000, floatPtr(5000)), 5000.5, false},
		{"between without end", amountRule(OpBetween, 1000, nil), 2000, false},
		{"equals", amountRule(OpEquals, 250, nil), 250, true},
		{"equals differs", amountRule(OpEquals, 250, nil), 250.01, false},
		{"unknown operator", amountRule("approximately", 250, nil), 250, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.threshold.Matches(tt.amount))
		})
	}
}

func TestMatchTierForAmount(t *testing.T) {
	tiers := []ApprovalTier{
		tier("Supervisor", amountRule(OpLessThan, 1000, nil)),
		tier("Manager", amountRule(OpBetween, 1000, floatPtr(10000))),
		tier("Director", amountRule(OpGreaterThan, 10000, nil)),
	}

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Supervisor"},
		{999, "Supervisor"},
		{1000, "Manager"},
		{10000, "Manager"},
		{10000.01, "Director"},
	}

	for _, tt := range tests {
		got := MatchTierForAmount(tiers, tt.amount)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, got.Name, "amount %v", tt.amount)
	}
}

func TestMatchTierForAmount_FirstMatchWins(t *testing.T) {
	tiers := []ApprovalTier{
		tier("Low", amountRule(OpLessThan, 5000, nil)),
		tier("Overlap", amountRule(OpLessThan, 10000, nil)),
	}

	got := MatchTierForAmount(tiers, 100)
	require.NotNil(t, got)
	assert.Equal(t, "Low", got.Name)
}

func TestMatchTierForAmount_FallsBackToLastTier(t *testing.T) {
	tiers := []ApprovalTier{
		tier("Exact", amountRule(OpEquals, 500, nil)),
		tier("No rules"),
		tier("Top", ApprovalThreshold{Kind: "department", Operator: OpEquals, Value: 1}),
	}

	got := MatchTierForAmount(tiers, 42)
	require.NotNil(t, got)
	assert.Equal(t, "Top", got.Name)

	// Non-amount thresholds never match even when the comparison would hold
	got = MatchTierForAmount(tiers, 1)
	require.NotNil(t, got)
	assert.Equal(t, "Top", got.Name)
}

func TestMatchTierForAmount_Empty(t *testing.T) {
	assert.Nil(t, MatchTierForAmount(nil, 100))
	assert.Nil(t, MatchTierForAmount([]ApprovalTier{}, 100))
}

func TestMatchTierForAmount_ReturnsElementOfInput(t *testing.T) {
	tiers := []ApprovalTier{tier("Only", amountRule(OpLessThan, 10, nil))}
	got := MatchTierForAmount(tiers, 5)
	assert.Same(t, &tiers[0], got)
}

func TestApprovalTierFormValidation(t *testing.T) {
	form := ApprovalTierForm{
		Category:     "purchase_order",
		Name:         "Manager",
		Level:        2,
		ApproverRole: "manager",
		Thresholds: []ApprovalThresholdForm{
			{Kind: "amount", Operator: OpBetween, Value: 1000},
		},
	}
	errors := form.Validate()
	assert.Equal(t, []string{"Between thresholds require an upper value"}, errors)

	form.Thresholds[0].ValueEnd = floatPtr(500)
	errors = form.Validate()
	assert.Len(t, errors, 1)

	form.Thresholds[0].ValueEnd = floatPtr(5000)
	assert.Empty(t, form.Validate())

	form.Thresholds = append(form.Thresholds, ApprovalThresholdForm{Kind: "amount", Operator: "around"})
	form.Level = 0
	assert.Len(t, form.Validate(), 2)
}
