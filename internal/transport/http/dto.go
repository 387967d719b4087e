package http

import "time"

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error errorBody `json:"error"`
}

// Requests. Tags only check shape; value objects own the domain rules.

type ProjectRequest struct {
	Title                  string  `json:"title" validate:"required,max=200"`
	Description            string  `json:"description" validate:"required,max=4000"`
	Status                 string  `json:"status" validate:"required,oneof=OPEN IN_PROGRESS COMPLETED CANCELLED UNDER_REVIEW"`
	RepoURL                *string `json:"repo_url" validate:"omitempty,max=500"`
	CoverImageURL          *string `json:"cover_image_url" validate:"omitempty,max=500"`
	EstimatedDurationWeeks *int    `json:"estimated_duration_weeks" validate:"omitempty,gte=1"`
	MaxTeamSize            *int    `json:"max_team_size" validate:"omitempty,gte=1"`
	IsPublic               bool    `json:"is_public"`
}

type ProjectStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ProjectVisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}

type MemberRoleRequest struct {
	Role string `json:"role" validate:"required,max=100"`
}

type ApplyRequest struct {
	MotivationMessage string `json:"motivation_message" validate:"required,max=2000"`
}

// Responses

type ProjectDTO struct {
	ID                     int64      `json:"id"`
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Summary                string     `json:"summary"`
	Status                 string     `json:"status"`
	OwnerID                int64      `json:"owner_id"`
	RepoURL                *string    `json:"repo_url,omitempty"`
	RepoProvider           string     `json:"repo_provider,omitempty"`
	RepoOwner              string     `json:"repo_owner,omitempty"`
	RepoName               string     `json:"repo_name,omitempty"`
	RepoAPIURL             string     `json:"repo_api_url,omitempty"`
	CoverImageURL          *string    `json:"cover_image_url,omitempty"`
	CoverImageFormat       string     `json:"cover_image_format,omitempty"`
	CoverImageHost         string     `json:"cover_image_host,omitempty"`
	CoverImageTrusted      bool       `json:"cover_image_trusted,omitempty"`
	EstimatedDurationWeeks *int       `json:"estimated_duration_weeks,omitempty"`
	DurationMonths         *int       `json:"estimated_duration_months,omitempty"`
	DurationCategory       string     `json:"duration_category,omitempty"`
	MaxTeamSize            *int       `json:"max_team_size,omitempty"`
	TeamSizeCategory       string     `json:"team_size_category,omitempty"`
	IsPublic               bool       `json:"is_public"`
	Lifecycle              string     `json:"lifecycle"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
}

type ProjectResponse struct {
	Project ProjectDTO `json:"project"`
}

type ProjectsResponse struct {
	Projects []ProjectDTO `json:"projects"`
}

type ApplicationDTO struct {
	ID                int64      `json:"id"`
	ProjectID         int64      `json:"project_id"`
	UserID            int64      `json:"user_id"`
	MotivationMessage string     `json:"motivation_message"`
	MotivationSummary string     `json:"motivation_summary"`
	Status            string     `json:"status"`
	SeenByOwner       bool       `json:"seen_by_owner"`
	Lifecycle         string     `json:"lifecycle"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
}

type ApplicationResponse struct {
	Application ApplicationDTO `json:"application"`
}

type ApplicationsResponse struct {
	Applications []ApplicationDTO `json:"applications"`
}

type MemberViewDTO struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	ProfileType string `json:"profile_type,omitempty"`
	IsOwner     bool   `json:"is_owner"`
}

type MembersResponse struct {
	Members []MemberViewDTO `json:"members"`
}

type MemberDTO struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"project_id"`
	UserID    int64      `json:"user_id"`
	Role      string     `json:"role"`
	IsOwner   bool       `json:"is_owner"`
	JoinedAt  time.Time  `json:"joined_at"`
	LeftAt    *time.Time `json:"left_at,omitempty"`
}

type MemberResponse struct {
	Member MemberDTO `json:"member"`
}
