package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teampulse/teampulse-backend-go/internal/domain/attendance"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
)

// Sessions starting after this local hour are marked late.
const lateCutoffHour = 9

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	guard          *accessservice.Guard
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, guard *accessservice.Guard) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		guard:          guard,
		now:            time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	clockedIn, err := s.attendanceRepo.HasClockedIn(ctx, actor.ID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if clockedIn {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	status := attendance.StatusPresent
	if now.Hour() >= lateCutoffHour {
		status = attendance.StatusLate
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		UserID:  actor.ID,
		Date:    today,
		ClockIn: &now,
		Status:  status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	session, err := s.attendanceRepo.GetOpenSession(ctx, actor.ID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to find open session: %w", err)
	}

	if err := s.attendanceRepo.SetClockOut(ctx, session.ID, now); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}

	session.ClockOut = &now
	return attendance.ToResponse(session), nil
}

// ListForUser implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForUser(ctx context.Context, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.guard.RequireOwnerAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	var from, to *time.Time
	if req.From != "" {
		t, _ := time.Parse("2006-01-02", req.From)
		from = &t
	}
	if req.To != "" {
		t, _ := time.Parse("2006-01-02", req.To)
		to = &t
	}

	records, err := s.attendanceRepo.ListByUser(ctx, req.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.ToResponse(a))
	}
	return responses, nil
}
