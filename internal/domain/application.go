package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(s); st {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return st, nil
	}
	return "", invalid("unknown application status %q", s)
}

// Application is one user's request to join a project.
//
//	PENDING --Accept--> ACCEPTED
//	PENDING --Reject--> REJECTED
//	PENDING --Cancel--> PENDING with lifecycle DEACTIVATED
//
// Nothing leaves ACCEPTED, REJECTED or a cancelled application.
type Application struct {
	ID          int64
	ProjectID   int64
	UserID      int64
	Motivation  MotivationMessage
	Status      ApplicationStatus
	SeenByOwner bool
	SubmittedAt time.Time
	ResolvedAt  *time.Time
	Lifecycle   Lifecycle
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewApplication(projectID, userID int64, motivation string) (Application, error) {
	msg, err := NewMotivationMessage(motivation)
	if err != nil {
		return Application{}, err
	}
	now := time.Now().UTC()
	return Application{
		ProjectID:   projectID,
		UserID:      userID,
		Motivation:  msg,
		Status:      ApplicationStatusPending,
		SubmittedAt: now,
		Lifecycle:   LifecycleActive,
		CreatedAt:   now,
	}, nil
}

func (a Application) IsPending() bool  { return a.Status == ApplicationStatusPending }
func (a Application) IsAccepted() bool { return a.Status == ApplicationStatusAccepted }
func (a Application) IsRejected() bool { return a.Status == ApplicationStatusRejected }
func (a Application) IsActive() bool   { return a.Lifecycle.IsActive() }
func (a Application) IsDeleted() bool  { return a.Lifecycle.IsDeleted() }

func (a Application) open() bool {
	return a.IsPending() && a.IsActive() && !a.IsDeleted()
}

func (a Application) CanBeAccepted() bool  { return a.open() }
func (a Application) CanBeRejected() bool  { return a.open() }
func (a Application) CanBeCancelled() bool { return a.open() }

func (a Application) Accept() (Application, error) {
	if !a.CanBeAccepted() {
		return Application{}, illegalState("application %d cannot be accepted", a.ID)
	}
	return a.resolve(ApplicationStatusAccepted), nil
}

func (a Application) Reject() (Application, error) {
	if !a.CanBeRejected() {
		return Application{}, illegalState("application %d cannot be rejected", a.ID)
	}
	return a.resolve(ApplicationStatusRejected), nil
}

// MarkAsSeen returns the receiver unchanged when it was already seen.
func (a Application) MarkAsSeen() Application {
	if a.SeenByOwner {
		return a
	}
	a.SeenByOwner = true
	now := time.Now().UTC()
	a.UpdatedAt = &now
	return a
}

func (a Application) Cancel() (Application, error) {
	if !a.CanBeCancelled() {
		return Application{}, illegalState("application %d cannot be cancelled", a.ID)
	}
	a.Lifecycle = LifecycleDeactivated
	now := time.Now().UTC()
	a.UpdatedAt = &now
	return a, nil
}

func (a Application) resolve(status ApplicationStatus) Application {
	now := time.Now().UTC()
	a.Status = status
	a.ResolvedAt = &now
	a.UpdatedAt = &now
	return a
}
