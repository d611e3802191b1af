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

const cafesPath = "/admin/cafes"

func (h *Handler) listCafes(w http.ResponseWriter, r *http.Request) {
	var data view.CafesData

	rows, err := h.Admin.ListCafes(r.Context())
	if err != nil {
		h.fail(r, "list cafes", err, service.MsgCafesLoadFail)
		data.Failed = service.MsgCafesLoadFail
	} else if len(rows) == 0 {
		data.Empty = service.MsgNoCafes
	}
	data.Rows = rows

	h.render(w, r, view.PageCafes, "Cafes", navAdmin, data)
}

func (h *Handler) newCafe(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageCafeForm, "Add cafe", navAdmin, view.CafeFormData{})
}

func (h *Handler) editCafe(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseID(mux.Vars(r)["id"])
	if !ok {
		h.Notify.Error(r.Context(), sessionID(r), service.MsgCafeLoadFail)
		redirect(w, r, cafesPath)
		return
	}

	form, err := h.Admin.EditCafe(r.Context(), id)
	if err != nil {
		h.fail(r, "get cafe", err, service.MsgCafeLoadFail)
		redirect(w, r, cafesPath)
		return
	}
	h.render(w, r, view.PageCafeForm, form.Title(), navAdmin, view.CafeFormData{Form: form})
}

func (h *Handler) saveCafe(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(r); err != nil {
		h.fail(r, "parse cafe form", err, service.MsgCafeSaveFail)
		redirect(w, r, cafesPath)
		return
	}
	form := cafeForm(r)

	image, file, err := formImage(r)
	if err != nil {
		h.fail(r, "read cafe image", err, service.MsgImageUpload)
	}
	if file != nil {
		defer file.Close()
	}

	result, err := h.Admin.SaveCafe(r.Context(), form, image)

	var formErr *service.FormError
	switch {
	case errors.As(err, &formErr):
		h.render(w, r, view.PageCafeForm, form.Title(), navAdmin, view.CafeFormData{Form: form, Errors: formErr})
		return
	case errors.Is(err, service.ErrImageUpload):
		h.succeed(r, cafeSavedMessage(result))
		h.fail(r, "upload cafe image", err, service.MsgImageUpload)
	case err != nil:
		h.fail(r, "save cafe", err, service.MsgCafeSaveFail)
		h.render(w, r, view.PageCafeForm, form.Title(), navAdmin, view.CafeFormData{Form: form})
		return
	default:
		h.succeed(r, cafeSavedMessage(result))
	}
	redirect(w, r, cafesPath)
}

func cafeSavedMessage(result service.SaveResult) string {
	if result.Created {
		return service.MsgCafeCreated
	}
	return service.MsgCafeUpdated
}

func (h *Handler) confirmDeleteCafe(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseID(mux.Vars(r)["id"])
	if !ok {
		redirect(w, r, cafesPath)
		return
	}
	h.render(w, r, view.PageConfirm, "Delete cafe", navAdmin, view.Confirm{
		Message: "Delete this cafe?",
		Warning: "All dishes of the cafe will be deleted too.",
		Action:  cafesPath + "/" + strconv.Itoa(id) + "/delete",
		Cancel:  cafesPath,
	})
}

func (h *Handler) deleteCafe(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseID(mux.Vars(r)["id"])
	if !ok {
		redirect(w, r, cafesPath)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	err := h.Admin.DeleteCafe(r.Context(), id, r.PostFormValue("confirm") == "yes")
	switch {
	case errors.Is(err, service.ErrConfirmationRequired):
		redirect(w, r, cafesPath+"/"+strconv.Itoa(id)+"/delete")
		return
	case err != nil:
		h.fail(r, "delete cafe", err, service.MsgCafeDeleteFail)
	default:
		h.succeed(r, service.MsgCafeDeleted)
	}
	redirect(w, r, cafesPath)
}
