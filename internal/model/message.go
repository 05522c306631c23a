package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeCategoryRequired      = "CATEGORY_REQUIRED"
	CodeCategoryNotFound      = "CATEGORY_NOT_FOUND"
	CodeMitigatingOutOfRange  = "MITIGATING_OUT_OF_RANGE"
	CodeAggravatingOutOfRange = "AGGRAVATING_OUT_OF_RANGE"
	CodeResultSaturated       = "RESULT_SATURATED"
)
