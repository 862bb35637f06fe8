package feedback

import "errors"

var (
	ErrRecipientNotFound = errors.New("feedback recipient not found")
	ErrSelfFeedback      = errors.New("cannot give feedback to yourself")
)
