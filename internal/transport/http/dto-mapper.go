package http

import (
	"errors"
	"net/http"

	"devmatch/internal/domain"

	"github.com/go-playground/validator/v10"
)

func projectDraftFromDto(req ProjectRequest) domain.ProjectDraft {
	return domain.ProjectDraft{
		Title:                  req.Title,
		Description:            req.Description,
		Status:                 domain.ProjectStatus(req.Status),
		RepoURL:                req.RepoURL,
		CoverImageURL:          req.CoverImageURL,
		EstimatedDurationWeeks: req.EstimatedDurationWeeks,
		MaxTeamSize:            req.MaxTeamSize,
		IsPublic:               req.IsPublic,
	}
}

// summaryLength bounds the preview text shown in listings.
const summaryLength = 160

func projectToDto(p domain.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          p.ID,
		Title:       p.Title.String(),
		Description: p.Description.String(),
		Summary:     p.Description.Summary(summaryLength),
		Status:      string(p.Status),
		OwnerID:     p.OwnerID,
		IsPublic:    p.IsPublic,
		Lifecycle:   string(p.Lifecycle),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.RepoURL != nil {
		url := p.RepoURL.String()
		dto.RepoURL = &url
		dto.RepoProvider = p.RepoURL.Provider()
		dto.RepoOwner = p.RepoURL.Owner()
		dto.RepoName = p.RepoURL.Name()
		dto.RepoAPIURL = p.RepoURL.APIURL()
	}
	if p.CoverImageURL != nil {
		url := p.CoverImageURL.String()
		dto.CoverImageURL = &url
		dto.CoverImageFormat = p.CoverImageURL.Format()
		dto.CoverImageHost = p.CoverImageURL.Host()
		dto.CoverImageTrusted = p.CoverImageURL.IsFromTrustedHost()
	}
	if p.EstimatedDuration != nil {
		weeks := p.EstimatedDuration.Weeks()
		months := p.EstimatedDuration.Months()
		dto.EstimatedDurationWeeks = &weeks
		dto.DurationMonths = &months
		dto.DurationCategory = p.EstimatedDuration.Category()
	}
	if p.MaxTeamSize != nil {
		size := p.MaxTeamSize.Value()
		dto.MaxTeamSize = &size
		dto.TeamSizeCategory = p.MaxTeamSize.Category()
	}

	return dto
}

func projectsToDto(projects []domain.Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectToDto(p))
	}
	return out
}

func applicationToDto(a domain.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:                a.ID,
		ProjectID:         a.ProjectID,
		UserID:            a.UserID,
		MotivationMessage: a.Motivation.String(),
		MotivationSummary: a.Motivation.Summary(summaryLength),
		Status:            string(a.Status),
		SeenByOwner:       a.SeenByOwner,
		Lifecycle:         string(a.Lifecycle),
		SubmittedAt:       a.SubmittedAt,
		ResolvedAt:        a.ResolvedAt,
	}
}

func applicationsToDto(applications []domain.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(applications))
	for _, a := range applications {
		out = append(out, applicationToDto(a))
	}
	return out
}

func membersToDto(members []domain.MemberView) []MemberViewDTO {
	out := make([]MemberViewDTO, 0, len(members))
	for _, m := range members {
		out = append(out, MemberViewDTO{
			UserID:      m.UserID,
			Username:    m.Username,
			Role:        m.Role,
			ProfileType: m.ProfileType,
			IsOwner:     m.IsOwner,
		})
	}
	return out
}

func memberToDto(m domain.Member) MemberDTO {
	return MemberDTO{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      m.Role,
		IsOwner:   m.IsOwner,
		JoinedAt:  m.JoinedAt,
		LeftAt:    m.LeftAt,
	}
}

func validationErrorResponse(verrs validator.ValidationErrors) ErrorResponse {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return ErrorResponse{
		Error: errorBody{
			Code:    "VALIDATION_ERROR",
			Message: "request validation failed",
			Fields:  fields,
		},
	}
}

func mappingDomainErrors(err error) (int, ErrorResponse) {
	var code string
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"

	case errors.Is(err, domain.ErrOperationNotAllowed):
		status = http.StatusForbidden
		code = "OPERATION_NOT_ALLOWED"

	case errors.Is(err, domain.ErrLimitExceeded):
		status = http.StatusBadRequest
		code = "LIMIT_EXCEEDED"

	case errors.Is(err, domain.ErrInvalidValue):
		status = http.StatusBadRequest
		code = "INVALID_VALUE"

	case errors.Is(err, domain.ErrIllegalState):
		status = http.StatusConflict
		code = "ILLEGAL_STATE"

	default:
		status = http.StatusInternalServerError
		code = "INTERNAL"
		message = "internal error"
	}

	return status, ErrorResponse{
		Error: errorBody{
			Code:    code,
			Message: message,
		},
	}
}
