package attendance

import (
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type ListAttendanceRequest struct {
	UserID string
	From   string // YYYY-MM-DD, optional
	To     string // YYYY-MM-DD, optional
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid user id"})
	}
	if r.From != "" {
		if _, ok := validator.IsValidDate(r.From); !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.To != "" {
		if _, ok := validator.IsValidDate(r.To); !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Status   string  `json:"status"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:     a.ID,
		UserID: a.UserID,
		Date:   a.Date.Format("2006-01-02"),
		Status: string(a.Status),
	}
	if a.ClockIn != nil {
		s := a.ClockIn.Format("2006-01-02 15:04:05")
		resp.ClockIn = &s
	}
	if a.ClockOut != nil {
		s := a.ClockOut.Format("2006-01-02 15:04:05")
		resp.ClockOut = &s
	}
	return resp
}
