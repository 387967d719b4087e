package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusOpen        ProjectStatus = "OPEN"
	ProjectStatusInProgress  ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted   ProjectStatus = "COMPLETED"
	ProjectStatusCancelled   ProjectStatus = "CANCELLED"
	ProjectStatusUnderReview ProjectStatus = "UNDER_REVIEW"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch st := ProjectStatus(s); st {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusCompleted,
		ProjectStatusCancelled, ProjectStatusUnderReview:
		return st, nil
	}
	return "", invalid("unknown project status %q", s)
}

// ProjectDraft carries the editable, not yet validated fields of a project.
type ProjectDraft struct {
	Title                  string
	Description            string
	Status                 ProjectStatus
	RepoURL                *string
	CoverImageURL          *string
	EstimatedDurationWeeks *int
	MaxTeamSize            *int
	IsPublic               bool
}

// Project is an immutable snapshot. Transition methods take a value receiver
// and return the changed copy.
type Project struct {
	ID                int64 // zero until persisted
	Title             Title
	Description       Description
	Status            ProjectStatus
	OwnerID           int64
	RepoURL           *RepositoryURL
	CoverImageURL     *CoverImageURL
	EstimatedDuration *Duration
	MaxTeamSize       *TeamSize
	IsPublic          bool
	Lifecycle         Lifecycle
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// NewProject validates the draft and returns an active, unpersisted project.
func NewProject(ownerID int64, draft ProjectDraft) (Project, error) {
	p := Project{
		OwnerID:   ownerID,
		Lifecycle: LifecycleActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.applyDraft(draft); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Edit replaces the editable fields. Owner, lifecycle and creation time are kept.
func (p Project) Edit(draft ProjectDraft) (Project, error) {
	if err := p.applyDraft(draft); err != nil {
		return Project{}, err
	}
	return p.touched(), nil
}

func (p *Project) applyDraft(d ProjectDraft) error {
	title, err := NewTitle(d.Title)
	if err != nil {
		return err
	}
	description, err := NewDescription(d.Description)
	if err != nil {
		return err
	}
	status, err := ParseProjectStatus(string(d.Status))
	if err != nil {
		return err
	}

	var repo *RepositoryURL
	if d.RepoURL != nil {
		r, err := NewRepositoryURL(*d.RepoURL)
		if err != nil {
			return err
		}
		repo = &r
	}
	var cover *CoverImageURL
	if d.CoverImageURL != nil {
		c, err := NewCoverImageURL(*d.CoverImageURL)
		if err != nil {
			return err
		}
		cover = &c
	}
	var duration *Duration
	if d.EstimatedDurationWeeks != nil {
		v, err := NewDuration(*d.EstimatedDurationWeeks)
		if err != nil {
			return err
		}
		duration = &v
	}
	var size *TeamSize
	if d.MaxTeamSize != nil {
		v, err := NewTeamSize(*d.MaxTeamSize)
		if err != nil {
			return err
		}
		size = &v
	}

	p.Title = title
	p.Description = description
	p.Status = status
	p.RepoURL = repo
	p.CoverImageURL = cover
	p.EstimatedDuration = duration
	p.MaxTeamSize = size
	p.IsPublic = d.IsPublic
	return nil
}

func (p Project) IsActive() bool  { return p.Lifecycle.IsActive() }
func (p Project) IsDeleted() bool { return p.Lifecycle.IsDeleted() }

func (p Project) IsOwner(userID int64) bool { return p.OwnerID == userID }

func (p Project) CanBeEditedBy(userID int64) bool {
	return p.IsOwner(userID) && p.IsActive() && !p.IsDeleted()
}

func (p Project) IsVisibleTo(userID int64) bool {
	return p.IsPublic || p.IsOwner(userID)
}

func (p Project) IsOpenForApplications() bool {
	return p.Status == ProjectStatusOpen && p.IsActive() && !p.IsDeleted()
}

// IsFull is false when the project has no team size limit.
func (p Project) IsFull(currentTeamSize int) bool {
	if p.MaxTeamSize == nil {
		return false
	}
	return p.MaxTeamSize.IsFull(currentTeamSize)
}

func (p Project) IsInActiveDevelopment() bool {
	switch p.Status {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusUnderReview:
		return true
	}
	return false
}

func (p Project) UpdateStatus(status ProjectStatus) Project {
	p.Status = status
	return p.touched()
}

func (p Project) UpdateVisibility(isPublic bool) Project {
	p.IsPublic = isPublic
	return p.touched()
}

func (p Project) Deactivate() Project {
	p.Lifecycle = LifecycleDeactivated
	return p.touched()
}

func (p Project) SoftDelete() Project {
	p.Lifecycle = LifecycleDeleted
	return p.touched()
}

func (p Project) Restore() Project {
	p.Lifecycle = LifecycleActive
	return p.touched()
}

func (p Project) touched() Project {
	now := time.Now().UTC()
	p.UpdatedAt = &now
	return p
}
