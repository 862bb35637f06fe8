package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyActive    = errors.New("user is already active")
	ErrUserAlreadyInactive  = errors.New("user is already deactivated")
	ErrEmailAlreadyUsed     = errors.New("email address already in use")
	ErrCannotManageSelf     = errors.New("user cannot be their own manager")
	ErrManagerNotFound      = errors.New("manager not found")
	ErrManagerRoleRequired  = errors.New("assigned manager must hold the manager or admin role")
	ErrAdminAccessRequired  = errors.New("admin access required")
	ErrCannotDeactivateSelf = errors.New("cannot deactivate own account")
	ErrManagerCycle         = errors.New("assignment would make a user its own ancestor")
)
