package domain

import "fmt"

const MaxProjectsPerOwner = 5

// ValidateProjectCreation enforces the per-owner project quota. It must run
// before a new project is constructed.
func ValidateProjectCreation(ownerID int64, currentProjectCount int) error {
	if currentProjectCount >= MaxProjectsPerOwner {
		return fmt.Errorf("%w: user %d already owns %d projects (max %d)",
			ErrProjectLimitExceeded, ownerID, currentProjectCount, MaxProjectsPerOwner)
	}
	return nil
}
