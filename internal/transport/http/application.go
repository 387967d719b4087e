package http

import (
	"context"
	"net/http"

	"devmatch/internal/domain"
)

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req ApplyRequest
	if !h.decode(w, r, &req) {
		return
	}

	application, err := h.applicationsService.ApplyToProject(r.Context(), projectID, userID, req.MotivationMessage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApplicationResponse{Application: applicationToDto(application)})
}

func (h *Handler) handleProjectApplications(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	applications, err := h.applicationsService.GetProjectApplications(r.Context(), projectID, ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApplicationsResponse{Applications: applicationsToDto(applications)})
}

func (h *Handler) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	applications, err := h.applicationsService.GetUserApplications(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApplicationsResponse{Applications: applicationsToDto(applications)})
}

func (h *Handler) handleApplicationAccept(w http.ResponseWriter, r *http.Request) {
	h.resolveApplication(w, r, h.applicationsService.AcceptApplication)
}

func (h *Handler) handleApplicationReject(w http.ResponseWriter, r *http.Request) {
	h.resolveApplication(w, r, h.applicationsService.RejectApplication)
}

func (h *Handler) handleApplicationCancel(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	applicationID, ok := pathID(w, r, "applicationID")
	if !ok {
		return
	}

	application, err := h.applicationsService.CancelApplication(r.Context(), applicationID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApplicationResponse{Application: applicationToDto(application)})
}

type resolveFunc = func(ctx context.Context, projectID, applicationID, ownerID int64) (domain.Application, error)

func (h *Handler) resolveApplication(w http.ResponseWriter, r *http.Request, resolve resolveFunc) {
	ownerID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	applicationID, ok := pathID(w, r, "applicationID")
	if !ok {
		return
	}

	application, err := resolve(r.Context(), projectID, applicationID, ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApplicationResponse{Application: applicationToDto(application)})
}
