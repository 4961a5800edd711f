package http

import (
	"net/http"
)

func (h Handler) ListBanks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListBanks())
}

func (h Handler) PostBank(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if !decode(w, r, &req) {
		return
	}

	bank, err := h.service.CreateBank(req.Name)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, bank)
}

func (h Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	id, err := bankID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	bank, err := h.service.GetBank(id)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, bank)
}

func (h Handler) PatchBank(w http.ResponseWriter, r *http.Request) {
	id, err := bankID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req NameRequest
	if !decode(w, r, &req) {
		return
	}

	bank, err := h.service.RenameBank(id, req.Name)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, bank)
}

func (h Handler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	id, err := bankID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.service.RemoveBank(id); err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
