package http

import "net/http"

func (h *Handler) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req ProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	created, err := h.projectsService.CreateProject(r.Context(), userID, projectDraftFromDto(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ProjectResponse{Project: projectToDto(created)})
}

func (h *Handler) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req ProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	updated, err := h.projectsService.UpdateProject(r.Context(), projectID, userID, projectDraftFromDto(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: projectToDto(updated)})
}

func (h *Handler) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	project, err := h.projectsService.GetProject(r.Context(), projectID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: projectToDto(project)})
}

func (h *Handler) handlePublicProjectGet(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	project, err := h.projectsService.GetPublicProject(r.Context(), projectID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: projectToDto(project)})
}

func (h *Handler) handlePublicProjectsList(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	projects, err := h.projectsService.ListPublicProjects(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectsResponse{Projects: projectsToDto(projects)})
}

func (h *Handler) handleMyProjectsList(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	projects, err := h.projectsService.ListOwnerProjects(r.Context(), userID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectsResponse{Projects: projectsToDto(projects)})
}

// handleOwnerProjectsList works anonymously; the caller id, when present,
// decides whether private projects are included.
func (h *Handler) handleOwnerProjectsList(w http.ResponseWriter, r *http.Request) {
	callerID, _ := UserIDFromContext(r.Context())
	ownerID, ok := pathID(w, r, "ownerID")
	if !ok {
		return
	}

	projects, err := h.projectsService.ListOwnerProjects(r.Context(), ownerID, callerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectsResponse{Projects: projectsToDto(projects)})
}

func (h *Handler) handleProjectStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req ProjectStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	project, err := h.projectsService.ChangeStatus(r.Context(), projectID, userID, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: projectToDto(project)})
}

func (h *Handler) handleProjectVisibility(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	var req ProjectVisibilityRequest
	if !h.decode(w, r, &req) {
		return
	}

	project, err := h.projectsService.ChangeVisibility(r.Context(), projectID, userID, *req.IsPublic)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: projectToDto(project)})
}

func (h *Handler) handleProjectDeactivate(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	project, err := h.projectsService.Deactivate(r.Context(), projectID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: projectToDto(project)})
}

func (h *Handler) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	if err := h.projectsService.Delete(r.Context(), projectID, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleProjectRestore(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	project, err := h.projectsService.Restore(r.Context(), projectID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: projectToDto(project)})
}

func (h *Handler) handleProjectMembers(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	members, err := h.projectsService.GetProjectMembers(r.Context(), projectID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MembersResponse{Members: membersToDto(members)})
}

func (h *Handler) handleMemberRemove(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	memberUserID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.projectsService.RemoveMember(r.Context(), projectID, memberUserID, ownerID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMemberRole(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := UserIDFromContext(r.Context())
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	memberUserID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req MemberRoleRequest
	if !h.decode(w, r, &req) {
		return
	}

	member, err := h.projectsService.ChangeMemberRole(r.Context(), projectID, memberUserID, req.Role, ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MemberResponse{Member: memberToDto(member)})
}
