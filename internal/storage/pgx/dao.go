package pgx

import (
	"database/sql"
	"fmt"
	"time"

	"devmatch/internal/domain"
)

type projectDAO struct {
	ID                     int64
	Title                  string
	Description            string
	Status                 string
	OwnerID                int64
	RepoURL                sql.NullString
	CoverImageURL          sql.NullString
	EstimatedDurationWeeks sql.NullInt32
	MaxTeamSize            sql.NullInt32
	IsPublic               bool
	Lifecycle              string
	CreatedAt              time.Time
	UpdatedAt              sql.NullTime
}

const projectColumns = `
	id, title, description, status, owner_id, repo_url, cover_image_url,
	estimated_duration_weeks, max_team_size, is_public, lifecycle, created_at, updated_at`

func (d *projectDAO) scanArgs() []any {
	return []any{
		&d.ID, &d.Title, &d.Description, &d.Status, &d.OwnerID, &d.RepoURL, &d.CoverImageURL,
		&d.EstimatedDurationWeeks, &d.MaxTeamSize, &d.IsPublic, &d.Lifecycle, &d.CreatedAt, &d.UpdatedAt,
	}
}

// projectDAOToDomain revalidates stored values through the domain constructors.
func projectDAOToDomain(d projectDAO) (domain.Project, error) {
	draft := domain.ProjectDraft{
		Title:       d.Title,
		Description: d.Description,
		Status:      domain.ProjectStatus(d.Status),
		IsPublic:    d.IsPublic,
	}
	if d.RepoURL.Valid {
		draft.RepoURL = &d.RepoURL.String
	}
	if d.CoverImageURL.Valid {
		draft.CoverImageURL = &d.CoverImageURL.String
	}
	if d.EstimatedDurationWeeks.Valid {
		v := int(d.EstimatedDurationWeeks.Int32)
		draft.EstimatedDurationWeeks = &v
	}
	if d.MaxTeamSize.Valid {
		v := int(d.MaxTeamSize.Int32)
		draft.MaxTeamSize = &v
	}

	p, err := domain.NewProject(d.OwnerID, draft)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project row %d: %w", d.ID, err)
	}
	lifecycle, err := domain.ParseLifecycle(d.Lifecycle)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project row %d: %w", d.ID, err)
	}

	p.ID = d.ID
	p.Lifecycle = lifecycle
	p.CreatedAt = d.CreatedAt
	p.UpdatedAt = nullTimePtr(d.UpdatedAt)
	return p, nil
}

// projectRow flattens the optional value objects into nullable columns.
type projectRow struct {
	repoURL       *string
	coverImageURL *string
	duration      *int
	maxTeamSize   *int
}

func projectToRow(p domain.Project) projectRow {
	var r projectRow
	if p.RepoURL != nil {
		v := p.RepoURL.String()
		r.repoURL = &v
	}
	if p.CoverImageURL != nil {
		v := p.CoverImageURL.String()
		r.coverImageURL = &v
	}
	if p.EstimatedDuration != nil {
		v := p.EstimatedDuration.Weeks()
		r.duration = &v
	}
	if p.MaxTeamSize != nil {
		v := p.MaxTeamSize.Value()
		r.maxTeamSize = &v
	}
	return r
}

type applicationDAO struct {
	ID          int64
	ProjectID   int64
	UserID      int64
	Motivation  string
	Status      string
	SeenByOwner bool
	SubmittedAt time.Time
	ResolvedAt  sql.NullTime
	Lifecycle   string
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
}

const applicationColumns = `
	id, project_id, user_id, motivation_message, status, seen_by_owner,
	submitted_at, resolved_at, lifecycle, created_at, updated_at`

func (d *applicationDAO) scanArgs() []any {
	return []any{
		&d.ID, &d.ProjectID, &d.UserID, &d.Motivation, &d.Status, &d.SeenByOwner,
		&d.SubmittedAt, &d.ResolvedAt, &d.Lifecycle, &d.CreatedAt, &d.UpdatedAt,
	}
}

func applicationDAOToDomain(d applicationDAO) (domain.Application, error) {
	a, err := domain.NewApplication(d.ProjectID, d.UserID, d.Motivation)
	if err != nil {
		return domain.Application{}, fmt.Errorf("application row %d: %w", d.ID, err)
	}
	status, err := domain.ParseApplicationStatus(d.Status)
	if err != nil {
		return domain.Application{}, fmt.Errorf("application row %d: %w", d.ID, err)
	}
	lifecycle, err := domain.ParseLifecycle(d.Lifecycle)
	if err != nil {
		return domain.Application{}, fmt.Errorf("application row %d: %w", d.ID, err)
	}

	a.ID = d.ID
	a.Status = status
	a.SeenByOwner = d.SeenByOwner
	a.SubmittedAt = d.SubmittedAt
	a.ResolvedAt = nullTimePtr(d.ResolvedAt)
	a.Lifecycle = lifecycle
	a.CreatedAt = d.CreatedAt
	a.UpdatedAt = nullTimePtr(d.UpdatedAt)
	return a, nil
}

type memberDAO struct {
	ID        int64
	ProjectID int64
	UserID    int64
	Role      string
	IsOwner   bool
	JoinedAt  time.Time
	LeftAt    sql.NullTime
	Lifecycle string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

const memberColumns = `
	id, project_id, user_id, member_role, is_owner, joined_at, left_at, lifecycle, created_at, updated_at`

func (d *memberDAO) scanArgs() []any {
	return []any{
		&d.ID, &d.ProjectID, &d.UserID, &d.Role, &d.IsOwner, &d.JoinedAt, &d.LeftAt, &d.Lifecycle, &d.CreatedAt, &d.UpdatedAt,
	}
}

func memberDAOToDomain(d memberDAO) (domain.Member, error) {
	lifecycle, err := domain.ParseLifecycle(d.Lifecycle)
	if err != nil {
		return domain.Member{}, fmt.Errorf("member row %d: %w", d.ID, err)
	}
	return domain.Member{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		UserID:    d.UserID,
		Role:      d.Role,
		IsOwner:   d.IsOwner,
		JoinedAt:  d.JoinedAt,
		LeftAt:    nullTimePtr(d.LeftAt),
		Lifecycle: lifecycle,
		CreatedAt: d.CreatedAt,
		UpdatedAt: nullTimePtr(d.UpdatedAt),
	}, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
