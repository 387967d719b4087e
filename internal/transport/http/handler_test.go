package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devmatch/internal/domain"
	"devmatch/internal/transport/http/mocks"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	validTitle       = "Open Source Tracker"
	validDescription = "A collaborative tool for tracking open source contributions across teams"
	validMotivation  = "I would love to join and help build the backend"
)

type fakePinger struct{ err error }

func (p *fakePinger) Ping(_ context.Context) error { return p.err }

type testServer struct {
	router       http.Handler
	projects     *mocks.ProjectsService
	applications *mocks.ApplicationsService
	db           *fakePinger
}

func newTestServer(t *testing.T, opts Options) testServer {
	t.Helper()

	projects := mocks.NewProjectsService(t)
	applications := mocks.NewApplicationsService(t)
	db := &fakePinger{}

	h := NewHandler(projects, applications, db, zap.NewNop(), opts)
	t.Cleanup(h.Close)

	return testServer{
		router:       h.Routes(),
		projects:     projects,
		applications: applications,
		db:           db,
	}
}

func (s testServer) do(t *testing.T, method, target, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(headerUserID, userID)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func testProject(t *testing.T, id, ownerID int64) domain.Project {
	t.Helper()

	size := 4
	p, err := domain.NewProject(ownerID, domain.ProjectDraft{
		Title:       validTitle,
		Description: validDescription,
		Status:      domain.ProjectStatusOpen,
		MaxTeamSize: &size,
		IsPublic:    true,
	})
	require.NoError(t, err)
	p.ID = id
	return p
}

func testApplication(t *testing.T, id, projectID, userID int64) domain.Application {
	t.Helper()

	a, err := domain.NewApplication(projectID, userID, validMotivation)
	require.NoError(t, err)
	a.ID = id
	return a
}

func TestHandler_CreateProject(t *testing.T) {
	srv := newTestServer(t, Options{})

	body := fmt.Sprintf(`{"title":%q,"description":%q,"status":"OPEN","max_team_size":4,"is_public":true}`,
		validTitle, validDescription)

	srv.projects.On("CreateProject", mock.Anything, int64(7), mock.MatchedBy(func(d domain.ProjectDraft) bool {
		return d.Title == validTitle &&
			d.Status == domain.ProjectStatusOpen &&
			d.MaxTeamSize != nil && *d.MaxTeamSize == 4 &&
			d.IsPublic
	})).Return(testProject(t, 3, 7), nil).Once()

	rec := srv.do(t, http.MethodPost, "/api/v1/projects", "7", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(headerRequestID))

	var resp ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Project.ID)
	assert.Equal(t, validTitle, resp.Project.Title)
	assert.Equal(t, "OPEN", resp.Project.Status)
	assert.Equal(t, "ACTIVE", resp.Project.Lifecycle)
	require.NotNil(t, resp.Project.MaxTeamSize)
	assert.Equal(t, 4, *resp.Project.MaxTeamSize)
}

func TestHandler_Identity(t *testing.T) {
	srv := newTestServer(t, Options{})

	tests := []struct {
		name   string
		userID string
	}{
		{"missing header", ""},
		{"not a number", "abc"},
		{"negative", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, "/api/v1/projects/my", tt.userID, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
		})
	}

	srv.projects.AssertNotCalled(t, "ListOwnerProjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_RequestValidation(t *testing.T) {
	srv := newTestServer(t, Options{})

	t.Run("invalid json", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/api/v1/projects", "7", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, rec).Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/api/v1/projects", "7", `{"status":"DONE"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Equal(t, "required", body.Fields["Title"])
		assert.Equal(t, "required", body.Fields["Description"])
		assert.Equal(t, "oneof", body.Fields["Status"])
	})

	t.Run("visibility flag is required", func(t *testing.T) {
		rec := srv.do(t, http.MethodPut, "/api/v1/projects/3/visibility", "7", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "required", decodeError(t, rec).Fields["IsPublic"])
	})

	t.Run("bad path id", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/v1/projects/zero", "7", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "projectID")
	})

	srv.projects.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ChangeVisibility(t *testing.T) {
	srv := newTestServer(t, Options{})

	hidden := testProject(t, 3, 7).UpdateVisibility(false)
	srv.projects.On("ChangeVisibility", mock.Anything, int64(3), int64(7), false).Return(hidden, nil).Once()

	rec := srv.do(t, http.MethodPut, "/api/v1/projects/3/visibility", "7", `{"is_public":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Project.IsPublic)
}

func TestHandler_PublicProjects(t *testing.T) {
	srv := newTestServer(t, Options{})

	srv.projects.On("ListPublicProjects", mock.Anything, 10, 20).
		Return([]domain.Project{testProject(t, 3, 7), testProject(t, 4, 8)}, nil).Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/projects/public?limit=10&offset=20", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProjectsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, int64(4), resp.Projects[1].ID)

	rec = srv.do(t, http.MethodGet, "/api/v1/projects/public?limit=ten", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PublicProjectDetails(t *testing.T) {
	srv := newTestServer(t, Options{})

	repo := "HTTPS://www.github.com/acme/tracker/"
	cover := "https://i.imgur.com/cover.png"
	weeks := 10
	project, err := domain.NewProject(7, domain.ProjectDraft{
		Title:                  validTitle,
		Description:            strings.Repeat("A tool for tracking contributions. ", 10),
		Status:                 domain.ProjectStatusOpen,
		RepoURL:                &repo,
		CoverImageURL:          &cover,
		EstimatedDurationWeeks: &weeks,
		IsPublic:               true,
	})
	require.NoError(t, err)
	project.ID = 3

	srv.projects.On("GetPublicProject", mock.Anything, int64(3)).Return(project, nil).Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/projects/public/3", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	got := resp.Project
	require.NotNil(t, got.RepoURL)
	assert.Equal(t, "https://github.com/acme/tracker", *got.RepoURL)
	assert.Equal(t, "acme", got.RepoOwner)
	assert.Equal(t, "tracker", got.RepoName)
	assert.Equal(t, "https://api.github.com/repos/acme/tracker", got.RepoAPIURL)
	assert.Equal(t, "PNG", got.CoverImageFormat)
	assert.Equal(t, "i.imgur.com", got.CoverImageHost)
	assert.True(t, got.CoverImageTrusted)
	require.NotNil(t, got.DurationMonths)
	assert.Equal(t, 3, *got.DurationMonths)
	assert.Len(t, []rune(got.Summary), summaryLength+len("..."))
	assert.True(t, strings.HasSuffix(got.Summary, "..."))
}

func TestHandler_OwnerProjectsAnonymous(t *testing.T) {
	srv := newTestServer(t, Options{})

	srv.projects.On("ListOwnerProjects", mock.Anything, int64(7), int64(0)).Return(nil, nil).Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/projects/owner/7", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"projects":[]}`, rec.Body.String())
}

func TestHandler_DeleteProject(t *testing.T) {
	srv := newTestServer(t, Options{})

	srv.projects.On("Delete", mock.Anything, int64(3), int64(7)).Return(nil).Once()
	srv.projects.On("Delete", mock.Anything, int64(3), int64(8)).Return(domain.ErrProjectNotEditable).Once()

	rec := srv.do(t, http.MethodDelete, "/api/v1/projects/3", "7", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = srv.do(t, http.MethodDelete, "/api/v1/projects/3", "8", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "OPERATION_NOT_ALLOWED", decodeError(t, rec).Code)
}

func TestHandler_ProjectMembers(t *testing.T) {
	srv := newTestServer(t, Options{})

	srv.projects.On("GetProjectMembers", mock.Anything, int64(3), int64(7)).Return([]domain.MemberView{
		{UserID: 8, Username: "alice", Role: domain.RoleDeveloper, ProfileType: "BACKEND"},
		{UserID: 9, Username: domain.FallbackUsername(9), Role: domain.RoleLeader},
	}, nil).Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/projects/3/members", "7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MembersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Members, 2)
	assert.Equal(t, "alice", resp.Members[0].Username)
	assert.Equal(t, "User 9", resp.Members[1].Username)
}

func TestHandler_ChangeMemberRole(t *testing.T) {
	srv := newTestServer(t, Options{})

	member, err := domain.NewMember(3, 8, domain.RoleLeader)
	require.NoError(t, err)
	srv.projects.On("ChangeMemberRole", mock.Anything, int64(3), int64(8), "leader", int64(7)).Return(member, nil).Once()

	rec := srv.do(t, http.MethodPut, "/api/v1/projects/3/members/8/role", "7", `{"role":"leader"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MemberResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.RoleLeader, resp.Member.Role)
	assert.Equal(t, int64(8), resp.Member.UserID)
}

func TestHandler_ApplyToProject(t *testing.T) {
	srv := newTestServer(t, Options{})

	srv.applications.On("ApplyToProject", mock.Anything, int64(3), int64(8), validMotivation).
		Return(testApplication(t, 11, 3, 8), nil).Once()

	rec := srv.do(t, http.MethodPost, "/api/v1/project-applications/apply/3", "8",
		fmt.Sprintf(`{"motivation_message":%q}`, validMotivation))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp ApplicationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Application.ID)
	assert.Equal(t, "PENDING", resp.Application.Status)
	assert.False(t, resp.Application.SeenByOwner)
}

func TestHandler_ResolveApplication(t *testing.T) {
	srv := newTestServer(t, Options{})

	accepted, err := testApplication(t, 11, 3, 8).Accept()
	require.NoError(t, err)

	srv.applications.On("AcceptApplication", mock.Anything, int64(3), int64(11), int64(7)).Return(accepted, nil).Once()
	srv.applications.On("AcceptApplication", mock.Anything, int64(3), int64(12), int64(7)).
		Return(domain.Application{}, domain.ErrProjectFull).Once()
	srv.applications.On("RejectApplication", mock.Anything, int64(3), int64(13), int64(7)).
		Return(domain.Application{}, domain.ErrApplicationNotFound).Once()

	rec := srv.do(t, http.MethodPut, "/api/v1/project-applications/project/3/application/11/accept", "7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ApplicationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ACCEPTED", resp.Application.Status)
	assert.NotNil(t, resp.Application.ResolvedAt)

	rec = srv.do(t, http.MethodPut, "/api/v1/project-applications/project/3/application/12/accept", "7", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "project is full")

	rec = srv.do(t, http.MethodPut, "/api/v1/project-applications/project/3/application/13/reject", "7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CancelApplication(t *testing.T) {
	srv := newTestServer(t, Options{})

	cancelled, err := testApplication(t, 11, 3, 8).Cancel()
	require.NoError(t, err)
	srv.applications.On("CancelApplication", mock.Anything, int64(11), int64(8)).Return(cancelled, nil).Once()

	rec := srv.do(t, http.MethodDelete, "/api/v1/project-applications/application/11/cancel", "8", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ApplicationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Application.Status)
	assert.Equal(t, "DEACTIVATED", resp.Application.Lifecycle)
}

func TestHandler_MyApplications(t *testing.T) {
	srv := newTestServer(t, Options{})

	srv.applications.On("GetUserApplications", mock.Anything, int64(8)).
		Return([]domain.Application{testApplication(t, 11, 3, 8)}, nil).Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/project-applications/my", "8", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ApplicationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, validMotivation, resp.Applications[0].MotivationMessage)
	assert.Equal(t, validMotivation, resp.Applications[0].MotivationSummary)
}

func TestHandler_RateLimit(t *testing.T) {
	srv := newTestServer(t, Options{RateLimitRPS: 1, RateLimitBurst: 1})

	srv.projects.On("ListPublicProjects", mock.Anything, 0, 0).Return(nil, nil).Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/projects/public", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/projects/public", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", decodeError(t, rec).Code)
}

func TestHandler_RequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(headerRequestID, "req-42")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(headerRequestID))
}

func TestRequestID_VisibleToChi(t *testing.T) {
	var seen string
	h := requestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.GetReqID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", seen)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-42", seen)
	assert.Equal(t, seen, rec.Header().Get(headerRequestID))
}

func TestHandler_Ready(t *testing.T) {
	srv := newTestServer(t, Options{})

	rec := srv.do(t, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	srv.db.err = errors.New("connection refused")
	rec = srv.do(t, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMappingDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("%w: 3", domain.ErrProjectNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"not allowed", domain.ErrAlreadyApplied, http.StatusForbidden, "OPERATION_NOT_ALLOWED"},
		{"quota", domain.ErrProjectLimitExceeded, http.StatusBadRequest, "LIMIT_EXCEEDED"},
		{"invalid value", fmt.Errorf("%w: title too short", domain.ErrInvalidValue), http.StatusBadRequest, "INVALID_VALUE"},
		{"illegal state", fmt.Errorf("%w: already resolved", domain.ErrIllegalState), http.StatusConflict, "ILLEGAL_STATE"},
		{"unknown", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mappingDomainErrors(tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}

	_, body := mappingDomainErrors(errors.New("pool exhausted"))
	assert.Equal(t, "internal error", body.Error.Message)
}
