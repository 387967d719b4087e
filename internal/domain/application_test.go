package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingApplication(t *testing.T) Application {
	t.Helper()

	a, err := NewApplication(10, 2, "I would love to join and help")
	require.NoError(t, err)
	return a
}

func TestNewApplication(t *testing.T) {
	a := newPendingApplication(t)

	assert.True(t, a.IsPending())
	assert.True(t, a.IsActive())
	assert.False(t, a.SeenByOwner)
	assert.Nil(t, a.ResolvedAt)
	assert.False(t, a.SubmittedAt.IsZero())

	_, err := NewApplication(10, 2, "pick me")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestApplication_Accept(t *testing.T) {
	a := newPendingApplication(t)
	require.True(t, a.CanBeAccepted())

	accepted, err := a.Accept()
	require.NoError(t, err)
	assert.True(t, accepted.IsAccepted())
	require.NotNil(t, accepted.ResolvedAt)
	assert.NotNil(t, accepted.UpdatedAt)
	assert.True(t, a.IsPending())

	_, err = accepted.Accept()
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = accepted.Reject()
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = accepted.Cancel()
	assert.ErrorIs(t, err, ErrIllegalState)
}

func TestApplication_Reject(t *testing.T) {
	rejected, err := newPendingApplication(t).Reject()
	require.NoError(t, err)
	assert.True(t, rejected.IsRejected())
	assert.NotNil(t, rejected.ResolvedAt)
	assert.False(t, rejected.CanBeAccepted())
	assert.False(t, rejected.CanBeCancelled())
}

func TestApplication_Cancel(t *testing.T) {
	cancelled, err := newPendingApplication(t).Cancel()
	require.NoError(t, err)

	assert.Equal(t, ApplicationStatusPending, cancelled.Status)
	assert.Equal(t, LifecycleDeactivated, cancelled.Lifecycle)
	assert.Nil(t, cancelled.ResolvedAt)
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, cancelled.CanBeAccepted())
	assert.False(t, cancelled.CanBeRejected())

	_, err = cancelled.Cancel()
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = cancelled.Accept()
	assert.ErrorIs(t, err, ErrIllegalState)
}

func TestApplication_MarkAsSeen_Idempotent(t *testing.T) {
	a := newPendingApplication(t)

	once := a.MarkAsSeen()
	twice := once.MarkAsSeen()

	assert.True(t, once.SeenByOwner)
	assert.Equal(t, once, twice)
	assert.False(t, a.SeenByOwner)
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseApplicationStatus("ACCEPTED")
	require.NoError(t, err)
	assert.Equal(t, ApplicationStatusAccepted, s)

	_, err = ParseApplicationStatus("accepted")
	assert.ErrorIs(t, err, ErrInvalidValue)

	l, err := ParseLifecycle("DELETED")
	require.NoError(t, err)
	assert.True(t, l.IsDeleted())
	assert.False(t, l.IsActive())

	_, err = ParseLifecycle("ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestMember(t *testing.T) {
	m, err := NewMember(10, 2, " developer ")
	require.NoError(t, err)
	assert.Equal(t, RoleDeveloper, m.Role)
	assert.True(t, m.IsActive())
	assert.Nil(t, m.LeftAt)

	_, err = NewMember(10, 2, "  ")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = m.ChangeRole(strings.Repeat("x", 51))
	assert.ErrorIs(t, err, ErrInvalidValue)

	lead, err := m.ChangeRole("leader")
	require.NoError(t, err)
	assert.Equal(t, RoleLeader, lead.Role)
	assert.Equal(t, RoleDeveloper, m.Role)

	left, err := lead.Leave()
	require.NoError(t, err)
	assert.False(t, left.IsActive())
	assert.NotNil(t, left.LeftAt)

	_, err = left.Leave()
	assert.ErrorIs(t, err, ErrIllegalState)
}
