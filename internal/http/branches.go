package http

import (
	"net/http"
)

func (h Handler) PostBranch(w http.ResponseWriter, r *http.Request) {
	id, err := bankID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req CreateBranchRequest
	if !decode(w, r, &req) {
		return
	}

	branch, err := h.service.CreateBranch(id, req.Name, req.Address.ToDomain())
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, branch)
}

func (h Handler) GetBranch(w http.ResponseWriter, r *http.Request) {
	ref, err := branchRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	branch, err := h.service.GetBranch(ref)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, branch)
}

func (h Handler) PatchBranch(w http.ResponseWriter, r *http.Request) {
	ref, err := branchRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req UpdateDetailsRequest
	if !decode(w, r, &req) {
		return
	}
	update, err := req.ToDomain()
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	branch, err := h.service.UpdateBranch(ref, update)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, branch)
}

func (h Handler) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	ref, err := branchRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.service.RemoveBranch(ref); err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
