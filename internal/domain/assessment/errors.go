package assessment

import "errors"

var (
	ErrAssessmentNotFound     = errors.New("assessment not found")
	ErrPeriodAlreadySubmitted = errors.New("assessment already submitted for this period")
)
