package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	RoleLeader    = "LEADER"
	RoleDeveloper = "DEVELOPER"

	memberRoleMaxLength = 50
)

// Member is an active or former team membership.
type Member struct {
	ID        int64
	ProjectID int64
	UserID    int64
	Role      string
	IsOwner   bool
	JoinedAt  time.Time
	LeftAt    *time.Time
	Lifecycle Lifecycle
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewMember(projectID, userID int64, role string) (Member, error) {
	r, err := NormalizeMemberRole(role)
	if err != nil {
		return Member{}, err
	}
	now := time.Now().UTC()
	return Member{
		ProjectID: projectID,
		UserID:    userID,
		Role:      r,
		JoinedAt:  now,
		Lifecycle: LifecycleActive,
		CreatedAt: now,
	}, nil
}

// NormalizeMemberRole trims and upper-cases a free-form role label.
func NormalizeMemberRole(role string) (string, error) {
	r := strings.ToUpper(strings.TrimSpace(role))
	if r == "" {
		return "", invalid("member role must not be empty")
	}
	if utf8.RuneCountInString(r) > memberRoleMaxLength {
		return "", invalid("member role must not exceed %d characters", memberRoleMaxLength)
	}
	return r, nil
}

func (m Member) IsActive() bool { return m.Lifecycle.IsActive() }

func (m Member) ChangeRole(role string) (Member, error) {
	r, err := NormalizeMemberRole(role)
	if err != nil {
		return Member{}, err
	}
	m.Role = r
	now := time.Now().UTC()
	m.UpdatedAt = &now
	return m, nil
}

// Leave ends the membership. The row is kept for history.
func (m Member) Leave() (Member, error) {
	if !m.IsActive() {
		return Member{}, illegalState("membership %d is not active", m.ID)
	}
	now := time.Now().UTC()
	m.LeftAt = &now
	m.Lifecycle = LifecycleDeactivated
	m.UpdatedAt = &now
	return m, nil
}
