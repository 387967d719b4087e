package domain

// Lifecycle replaces the is_active / is_deleted flag pair. A deleted record is
// never active.
type Lifecycle string

const (
	LifecycleActive      Lifecycle = "ACTIVE"
	LifecycleDeactivated Lifecycle = "DEACTIVATED"
	LifecycleDeleted     Lifecycle = "DELETED"
)

func ParseLifecycle(s string) (Lifecycle, error) {
	switch l := Lifecycle(s); l {
	case LifecycleActive, LifecycleDeactivated, LifecycleDeleted:
		return l, nil
	}
	return "", invalid("unknown lifecycle %q", s)
}

func (l Lifecycle) IsActive() bool  { return l == LifecycleActive }
func (l Lifecycle) IsDeleted() bool { return l == LifecycleDeleted }
