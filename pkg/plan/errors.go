package plan

import "errors"

// Domain errors for plan configuration loading. Runtime quota evaluation
// never returns errors; malformed provider data normalizes to defaults.
var (
	ErrFailedToLoadPlans        = errors.New("plan.errors.failed_to_load_plans")
	ErrInvalidPlanConfiguration = errors.New("plan.errors.invalid_plan_configuration")
)
