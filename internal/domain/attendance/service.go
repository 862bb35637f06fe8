package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens today's attendance session for the authenticated actor.
	ClockIn(ctx context.Context) (AttendanceResponse, error)

	// ClockOut closes the actor's open session.
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// ListForUser returns a user's attendance records, policy-gated.
	ListForUser(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)
}
