package model

// Plan is an insurance product tier. The set is closed: callers pass one
// of the three constants, anything else is a programming error.
type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanAdvanced Plan = "advanced"
	PlanPremium  Plan = "premium"
)

var planBases = map[Plan]float64{
	PlanBasic:    200,
	PlanAdvanced: 350,
	PlanPremium:  500,
}

// BasePrice returns the plan's base price in smartcars.
// ok is false for unrecognized plans.
func (p Plan) BasePrice() (base float64, ok bool) {
	base, ok = planBases[p]
	return base, ok
}
