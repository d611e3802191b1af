package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/service"
	"overcooked-simplified/web-svc/internal/view"

	"github.com/gorilla/mux"
)

const navAdmin = "admin"

func (h *Handler) adminHome(w http.ResponseWriter, r *http.Request) {
	var data view.AdminData

	checks, err := h.Admin.LoadChecks(r.Context())
	if err != nil {
		h.fail(r, "list checks", err, service.MsgChecksLoadFail)
	}
	data.Checks = checks

	if id := queryID(r, "qr"); id > 0 {
		overlay, err := h.Admin.CheckQR(r.Context(), id)
		if err != nil {
			h.fail(r, "check qr code", err, service.MsgQRFail)
		} else {
			data.QR = &overlay
		}
	}

	h.render(w, r, view.PageAdmin, "Admin", navAdmin, data)
}

func (h *Handler) checkForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.Admin.OpenCheckForm(r.Context(), queryID(r, "cafe_id"))
	if err != nil {
		h.fail(r, "list cafes", err, service.MsgCafesLoadFail)
	}
	h.render(w, r, view.PageCheckForm, "New check", navAdmin, form)
}

// submitCheckForm either recalculates the total or creates the check, by the
// button pressed. The selection always comes from the submitted form.
func (h *Handler) submitCheckForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	selection := checkSelection(r)

	if r.PostFormValue("action") == "create" {
		_, err := h.Admin.CreateCheck(r.Context(), selection)
		switch {
		case err == nil:
			h.succeed(r, service.MsgCheckCreated)
			redirect(w, r, "/admin")
			return
		case errors.Is(err, service.ErrNothingSelected):
			h.Notify.Error(r.Context(), sessionID(r), service.MsgNothingSelected)
		default:
			h.fail(r, "create check", err, service.MsgCheckCreateFail)
		}
	}

	form, err := h.Admin.OpenCheckForm(r.Context(), selection.CafeID)
	if err != nil {
		h.fail(r, "list cafes", err, service.MsgCafesLoadFail)
	}
	h.Admin.Recalculate(&form, selection)
	h.render(w, r, view.PageCheckForm, "New check", navAdmin, form)
}

func (h *Handler) viewCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseID(mux.Vars(r)["id"])
	if !ok {
		h.Notify.Error(r.Context(), sessionID(r), service.MsgNoCheckID)
		redirect(w, r, "/admin")
		return
	}
	http.Redirect(w, r, "/review?check_id="+strconv.Itoa(id), http.StatusFound)
}
