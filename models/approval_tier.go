package models

import (
	"strings"
)

// Threshold kinds and operators
const (
	ThresholdKindAmount = "amount"

	OpLessThan    = "less_than"
	OpGreaterThan = "greater_than"
	OpBetween     = "between"
	OpEquals      = "equals"
)

// ApprovalTier is one rung of an approval chain for a category of financial documents
type ApprovalTier struct {
	ID             int                 `json:"id"`
	OrganizationID int                 `json:"organization_id"`
	Category       string              `json:"category"`
	Name           string              `json:"name"`
	Level          int                 `json:"level"`
	ApproverRole   string              `json:"approver_role"`
	ApproverEmail  string              `json:"approver_email,omitempty"`
	IsActive       bool                `json:"is_active"`
	Thresholds     []ApprovalThreshold `json:"thresholds"`
	AuditFields
}

// Clone returns a copy of the tier that shares no thresholds with t
func (t ApprovalTier) Clone() ApprovalTier {
	c := t
	if t.Thresholds != nil {
		c.Thresholds = make([]ApprovalThreshold, len(t.Thresholds))
		for i, th := range t.Thresholds {
			if th.ValueEnd != nil {
				end := *th.ValueEnd
				th.ValueEnd = &end
			}
			c.Thresholds[i] = th
		}
	}
	return c
}

// ApprovalThreshold is a rule attached to a tier
type ApprovalThreshold struct {
	ID       int      `json:"id"`
	TierID   int      `json:"tier_id"`
	Kind     string   `json:"kind" yaml:"kind"`
	Operator string   `json:"operator" yaml:"operator"`
	Value    float64  `json:"value" yaml:"value"`
	ValueEnd *float64 `json:"value_end,omitempty" yaml:"value_end,omitempty"`
}

// Matches reports whether amount satisfies the threshold's operator.
// between is inclusive on both ends and never matches without an upper bound.
func (t ApprovalThreshold) Matches(amount float64) bool {
	switch t.Operator {
	case OpLessThan:
		return amount < t.Value
	case OpGreaterThan:
		return amount > t.Value
	case OpBetween:
		if t.ValueEnd == nil {
			return false
		}
		return amount >= t.Value && amount <= *t.ValueEnd
	case OpEquals:
		return amount == t.Value
	default:
		return false
	}
}

// MatchTierForAmount returns the first tier with an amount threshold matching amount.
// Tiers must be ordered lowest level first. When nothing matches the last (highest)
// tier is returned; an empty list yields nil.
func MatchTierForAmount(tiers []ApprovalTier, amount float64) *ApprovalTier {
	if len(tiers) == 0 {
		return nil
	}

	for i := range tiers {
		for _, threshold := range tiers[i].Thresholds {
			if threshold.Kind == ThresholdKindAmount && threshold.Matches(amount) {
				return &tiers[i]
			}
		}
	}

	return &tiers[len(tiers)-1]
}

// ApprovalThresholdForm represents one threshold rule of a tier form
type ApprovalThresholdForm struct {
	Kind     string   `json:"kind" yaml:"kind" validate:"required,oneof=amount"`
	Operator string   `json:"operator" yaml:"operator" validate:"required,oneof=less_than greater_than between equals"`
	Value    float64  `json:"value" yaml:"value"`
	ValueEnd *float64 `json:"value_end" yaml:"value_end"`
}

// ApprovalTierForm represents form data for creating/updating approval tiers
type ApprovalTierForm struct {
	Category      string                  `json:"category" yaml:"category" validate:"required,oneof=purchase_order journal_entry expense invoice"`
	Name          string                  `json:"name" yaml:"name" validate:"required,max=100"`
	Level         int                     `json:"level" yaml:"level" validate:"gte=1"`
	ApproverRole  string                  `json:"approver_role" yaml:"approver_role" validate:"required,max=50"`
	ApproverEmail string                  `json:"approver_email" yaml:"approver_email" validate:"omitempty,email"`
	IsActive      bool                    `json:"is_active" yaml:"is_active"`
	Thresholds    []ApprovalThresholdForm `json:"thresholds" yaml:"thresholds" validate:"dive"`
}

// Validate validates the approval tier form data
func (f *ApprovalTierForm) Validate() []string {
	errors := validateStruct(f)
	for _, t := range f.Thresholds {
		if t.Operator != OpBetween {
			continue
		}
		if t.ValueEnd == nil {
			errors = append(errors, "Between thresholds require an upper value")
		} else if *t.ValueEnd < t.Value {
			errors = append(errors, "Between thresholds require the upper value to be at least the lower value")
		}
	}
	return errors
}

// Apply copies validated form values onto the tier
func (f *ApprovalTierForm) Apply(t *ApprovalTier) {
	t.Category = f.Category
	t.Name = strings.TrimSpace(f.Name)
	t.Level = f.Level
	t.ApproverRole = strings.TrimSpace(f.ApproverRole)
	t.ApproverEmail = strings.TrimSpace(f.ApproverEmail)
	t.IsActive = f.IsActive

	t.Thresholds = make([]ApprovalThreshold, len(f.Thresholds))
	for i, th := range f.Thresholds {
		t.Thresholds[i] = ApprovalThreshold{
			TierID:   t.ID,
			Kind:     th.Kind,
			Operator: th.Operator,
			Value:    th.Value,
			ValueEnd: th.ValueEnd,
		}
	}
}

// ApprovalTierFilter narrows approval tier lists
type ApprovalTierFilter struct {
	Category   string
	ActiveOnly bool
	ListOptions
}

// TierMatch is the response of a tier lookup
type TierMatch struct {
	Category string        `json:"category"`
	Amount   float64       `json:"amount"`
	Tier     *ApprovalTier `json:"tier"`
}
