package feedback

import "time"

type Category string

const (
	CategoryPraise      Category = "praise"
	CategoryImprovement Category = "improvement"
	CategoryGeneral     Category = "general"
)

// Feedback is written by one user about another. The recipient's feedback is
// only readable by the recipient, their management chain, and admins.
type Feedback struct {
	ID          string
	SenderID    string
	RecipientID string
	Category    Category
	Body        string
	CreatedAt   time.Time
}
