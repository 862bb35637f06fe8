package performance

import "errors"

var (
	ErrReviewNotFound     = errors.New("performance review not found")
	ErrSelfReview         = errors.New("cannot review own performance")
	ErrDuplicateForPeriod = errors.New("review already exists for this reviewer and period")
)
