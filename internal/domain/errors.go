package domain

import (
	"errors"
	"fmt"
)

// Categories. Every concrete error below wraps exactly one of them.
var (
	ErrNotFound            = errors.New("not found")
	ErrOperationNotAllowed = errors.New("operation not allowed")
	ErrLimitExceeded       = errors.New("limit exceeded")
	ErrIllegalState        = errors.New("illegal state")
	ErrInvalidValue        = errors.New("invalid value")
)

var (
	ErrProjectNotFound     = fmt.Errorf("project %w", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrMemberNotFound      = fmt.Errorf("member %w", ErrNotFound)

	ErrNotProjectOwner       = fmt.Errorf("%w: caller is not the project owner", ErrOperationNotAllowed)
	ErrProjectNotEditable    = fmt.Errorf("%w: project cannot be edited by caller", ErrOperationNotAllowed)
	ErrProjectNotVisible     = fmt.Errorf("%w: project is not visible to caller", ErrOperationNotAllowed)
	ErrProjectNotPublic      = fmt.Errorf("%w: project is not publicly available", ErrOperationNotAllowed)
	ErrProjectClosed         = fmt.Errorf("%w: project is not open for applications", ErrOperationNotAllowed)
	ErrProjectFull           = fmt.Errorf("%w: project is full", ErrOperationNotAllowed)
	ErrTeamSizeBelowMembers  = fmt.Errorf("%w: max team size is below current member count", ErrOperationNotAllowed)
	ErrOwnerCannotApply      = fmt.Errorf("%w: owner cannot apply to own project", ErrOperationNotAllowed)
	ErrAlreadyApplied        = fmt.Errorf("%w: user already applied to project", ErrOperationNotAllowed)
	ErrAlreadyMember         = fmt.Errorf("%w: user is already a member of project", ErrOperationNotAllowed)
	ErrApplicationMismatch   = fmt.Errorf("%w: application does not belong to project", ErrOperationNotAllowed)
	ErrApplicationNotPending = fmt.Errorf("%w: application is no longer pending", ErrOperationNotAllowed)
	ErrNotApplicant          = fmt.Errorf("%w: caller is not the applicant", ErrOperationNotAllowed)
	ErrCannotCancel          = fmt.Errorf("%w: application cannot be cancelled", ErrOperationNotAllowed)
	ErrCannotRemoveOwner     = fmt.Errorf("%w: owner cannot be removed from project", ErrOperationNotAllowed)

	ErrProjectLimitExceeded = fmt.Errorf("project quota %w", ErrLimitExceeded)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

func illegalState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalState, fmt.Sprintf(format, args...))
}
