package proforma

// MilestoneTemplate is one row of the default payment schedule: a share of
// the contract value tied to a completion point of the construction window.
type MilestoneTemplate struct {
	Name            string
	PercentOfValue  float64
	PercentComplete float64
}

// Config carries the tunable constants of the engine. Callers normally start
// from DefaultConfig and override individual fields.
type Config struct {
	// ConstructionFraction is the share of the projection horizon assumed to
	// be construction when no explicit completion date is supplied.
	ConstructionFraction float64
	// MaxProjectionMonths bounds the horizon accepted from untrusted input.
	MaxProjectionMonths int
	// DefaultMilestones is the schedule materialized by
	// GenerateDefaultMilestones. Percentages of value must sum to 100.
	DefaultMilestones []MilestoneTemplate
}

func DefaultConfig() Config {
	return Config{
		ConstructionFraction: 0.8,
		MaxProjectionMonths:  3600,
		DefaultMilestones: []MilestoneTemplate{
			{Name: "Contract signing", PercentOfValue: 10, PercentComplete: 0},
			{Name: "Foundation complete", PercentOfValue: 15, PercentComplete: 15},
			{Name: "Framing complete", PercentOfValue: 20, PercentComplete: 30},
			{Name: "Mechanical rough-in", PercentOfValue: 20, PercentComplete: 50},
			{Name: "Substantial completion", PercentOfValue: 15, PercentComplete: 70},
			{Name: "Final completion", PercentOfValue: 20, PercentComplete: 100},
		},
	}
}
