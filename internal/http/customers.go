package http

import (
	"net/http"
)

func (h Handler) PostCustomer(w http.ResponseWriter, r *http.Request) {
	ref, err := branchRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req AddCustomerRequest
	if !decode(w, r, &req) {
		return
	}

	customer, err := h.service.AddCustomer(ref, req.Name, req.Address.ToDomain())
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

func (h Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ref, err := customerRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	customer, err := h.service.GetCustomer(ref)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h Handler) PatchCustomer(w http.ResponseWriter, r *http.Request) {
	ref, err := customerRef(r)
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

	customer, err := h.service.UpdateCustomer(ref, update)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ref, err := customerRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.service.RemoveCustomer(ref); err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
