package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Input               AdjustmentInput      `json:"input"`
	Result              *CalculationResult   `json:"result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

// CalculationResult is the adjusted sentence derived from one AdjustmentInput.
type CalculationResult struct {
	BaseCategoryName      string `json:"base_category_name"`
	ResultingCategoryID   string `json:"resulting_category_id"`
	ResultingCategoryName string `json:"resulting_category_name"`
	ResultingMinDays      int    `json:"resulting_min_days"`
	ResultingMaxDays      int    `json:"resulting_max_days"`
	ParoleThresholdDays   int    `json:"parole_threshold_days"`
	DaysServed            int    `json:"days_served"`
	RemainingDaysToParole int    `json:"remaining_days_to_parole"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
