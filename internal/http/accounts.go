package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"bankmanager/internal/core"
)

func (h Handler) PostAccount(w http.ResponseWriter, r *http.Request) {
	ref, err := customerRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	account, err := h.service.OpenAccount(ref)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

func (h Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ref, err := accountRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	account, err := h.service.GetAccount(ref)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ref, err := accountRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.service.CloseAccount(ref); err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) PostDeposit(w http.ResponseWriter, r *http.Request) {
	h.moveFunds(w, r, h.service.Deposit)
}

func (h Handler) PostWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.moveFunds(w, r, h.service.Withdraw)
}

func (h Handler) moveFunds(
	w http.ResponseWriter,
	r *http.Request,
	apply func(core.AccountRef, decimal.Decimal) (core.AccountView, error),
) {
	ref, err := accountRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req AmountRequest
	if !decode(w, r, &req) {
		return
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	account, err := apply(ref, amount)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h Handler) PostTransfer(w http.ResponseWriter, r *http.Request) {
	from, err := accountRef(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req TransferRequest
	if !decode(w, r, &req) {
		return
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := h.service.Transfer(from, req.Target(from), amount)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
