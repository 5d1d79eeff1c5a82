package models

// Identity is what the identity gateway supplies for an authenticated
// request: the stable user id and the subscription tier.
type Identity struct {
	UserId string
	Plan   string
}

// Premium reports whether the identity may use plan-gated operations.
func (i Identity) Premium() bool { return i.Plan == PlanPremium }
