package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"devmatch/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ProjectsService interface {
	CreateProject(ctx context.Context, ownerID int64, draft domain.ProjectDraft) (domain.Project, error)
	UpdateProject(ctx context.Context, projectID, userID int64, draft domain.ProjectDraft) (domain.Project, error)
	ChangeStatus(ctx context.Context, projectID, userID int64, status string) (domain.Project, error)
	ChangeVisibility(ctx context.Context, projectID, userID int64, isPublic bool) (domain.Project, error)
	Deactivate(ctx context.Context, projectID, userID int64) (domain.Project, error)
	Delete(ctx context.Context, projectID, userID int64) error
	Restore(ctx context.Context, projectID, userID int64) (domain.Project, error)
	GetProject(ctx context.Context, projectID, userID int64) (domain.Project, error)
	GetPublicProject(ctx context.Context, projectID int64) (domain.Project, error)
	ListPublicProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
	ListOwnerProjects(ctx context.Context, ownerID, callerID int64) ([]domain.Project, error)
	GetProjectMembers(ctx context.Context, projectID, userID int64) ([]domain.MemberView, error)
	RemoveMember(ctx context.Context, projectID, memberUserID, ownerID int64) error
	ChangeMemberRole(ctx context.Context, projectID, memberUserID int64, role string, ownerID int64) (domain.Member, error)
}

type ApplicationsService interface {
	ApplyToProject(ctx context.Context, projectID, userID int64, motivation string) (domain.Application, error)
	GetProjectApplications(ctx context.Context, projectID, ownerID int64) ([]domain.Application, error)
	GetUserApplications(ctx context.Context, userID int64) ([]domain.Application, error)
	AcceptApplication(ctx context.Context, projectID, applicationID, ownerID int64) (domain.Application, error)
	RejectApplication(ctx context.Context, projectID, applicationID, ownerID int64) (domain.Application, error)
	CancelApplication(ctx context.Context, applicationID, userID int64) (domain.Application, error)
}

// Pinger reports database readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Handler struct {
	projectsService     ProjectsService
	applicationsService ApplicationsService
	db                  Pinger
	validate            *validator.Validate
	limiter             *RateLimiter
	log                 *zap.Logger
	opts                Options
}

func NewHandler(projects ProjectsService, applications ApplicationsService, db Pinger, log *zap.Logger, opts Options) *Handler {
	return &Handler{
		projectsService:     projects,
		applicationsService: applications,
		db:                  db,
		validate:            validator.New(),
		limiter:             NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
		log:                 log,
		opts:                opts,
	}
}

// Close stops background work owned by the handler.
func (h *Handler) Close() {
	h.limiter.Stop()
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(requestLogger(h.log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", headerUserID, headerRequestID},
		ExposedHeaders:   []string{headerRequestID, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(identity)
		r.Use(rateLimit(h.limiter))

		r.Route("/projects", func(r chi.Router) {
			r.Get("/public", h.handlePublicProjectsList)
			r.Get("/public/{projectID}", h.handlePublicProjectGet)
			r.Get("/owner/{ownerID}", h.handleOwnerProjectsList)

			r.Group(func(r chi.Router) {
				r.Use(requireUser)

				r.Get("/my", h.handleMyProjectsList)
				r.Post("/", h.handleProjectCreate)
				r.Get("/{projectID}", h.handleProjectGet)
				r.Put("/{projectID}", h.handleProjectUpdate)
				r.Delete("/{projectID}", h.handleProjectDelete)
				r.Put("/{projectID}/status", h.handleProjectStatus)
				r.Put("/{projectID}/visibility", h.handleProjectVisibility)
				r.Put("/{projectID}/deactivate", h.handleProjectDeactivate)
				r.Put("/{projectID}/restore", h.handleProjectRestore)
				r.Get("/{projectID}/members", h.handleProjectMembers)
				r.Delete("/{projectID}/members/{userID}", h.handleMemberRemove)
				r.Put("/{projectID}/members/{userID}/role", h.handleMemberRole)
			})
		})

		r.Route("/project-applications", func(r chi.Router) {
			r.Use(requireUser)

			r.Post("/apply/{projectID}", h.handleApply)
			r.Get("/my", h.handleMyApplications)
			r.Get("/project/{projectID}", h.handleProjectApplications)
			r.Put("/project/{projectID}/application/{applicationID}/accept", h.handleApplicationAccept)
			r.Put("/project/{projectID}/application/{applicationID}/reject", h.handleApplicationReject)
			r.Delete("/application/{applicationID}/cancel", h.handleApplicationCancel)
		})
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ping(r.Context()); err != nil {
			h.log.Warn("readiness check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	return router
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: errorBody{
			Code:    "BAD_REQUEST",
			Message: message,
		},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := mappingDomainErrors(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, body)
}

// decode reads a JSON body into dst and runs its validation tags.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "invalid JSON")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse(verrs))
			return false
		}
		writeBadRequest(w, err.Error())
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeBadRequest(w, name+" must be an integer")
		return 0, false
	}
	return v, true
}
