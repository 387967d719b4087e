package domain

import "strconv"

// User is the read-only view of an account owned by the user service.
type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	ProfileTypes []string `json:"profile_types"`
}

// PrimaryProfileType is the first declared profile type, or "".
func (u User) PrimaryProfileType() string {
	if len(u.ProfileTypes) == 0 {
		return ""
	}
	return u.ProfileTypes[0]
}

// MemberView is a membership enriched with user data for presentation.
type MemberView struct {
	UserID      int64
	Username    string
	Role        string
	ProfileType string
	IsOwner     bool
}

func FallbackUsername(userID int64) string {
	return "User " + strconv.FormatInt(userID, 10)
}
