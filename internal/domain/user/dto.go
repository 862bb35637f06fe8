package user

import (
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

// UserSummary is the projection returned by listing endpoints.
type UserSummary struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	ManagerID *string `json:"manager_id,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
}

func ToSummary(u User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		ManagerID: u.ManagerID,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
	}
}

func ToSummaries(users []User) []UserSummary {
	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ToSummary(u))
	}
	return summaries
}

type ListFilter struct {
	Page  int
	Limit int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateUserRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !IsValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be admin, manager, or employee"})
	}
	if r.ManagerID != nil && !validator.IsValidID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "must be a valid user id"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateManagerRequest struct {
	ID        string  `json:"-"`
	ManagerID *string `json:"manager_id"`
}

func (r *UpdateManagerRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid user id"})
	}
	if r.ManagerID != nil && !validator.IsValidID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "must be a valid user id"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID       string `json:"-"`
	IsActive bool   `json:"is_active"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid user id"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
