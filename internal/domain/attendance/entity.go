package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	ClockIn   *time.Time
	ClockOut  *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
