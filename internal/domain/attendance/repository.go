package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)

	// GetOpenSession returns today's record without a clock-out for userID.
	GetOpenSession(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// HasClockedIn reports whether userID already has a record for date.
	HasClockedIn(ctx context.Context, userID string, date time.Time) (bool, error)

	SetClockOut(ctx context.Context, id string, clockOut time.Time) error

	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]Attendance, error)
}
