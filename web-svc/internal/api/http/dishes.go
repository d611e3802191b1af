package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/service"
	"overcooked-simplified/web-svc/internal/view"

	"github.com/gorilla/mux"
)

func dishesPath(cafeID int) string {
	if cafeID <= 0 {
		return "/admin/dishes"
	}
	return fmt.Sprintf("/admin/dishes?cafe_id=%d", cafeID)
}

func (h *Handler) dishManager(w http.ResponseWriter, r *http.Request) {
	page, err := h.Admin.DishManager(r.Context(), queryID(r, "cafe_id"))
	if err != nil {
		h.fail(r, "dish manager", err, page.Message)
	}
	h.render(w, r, view.PageDishes, "Dishes", navAdmin, page)
}

func (h *Handler) newDish(w http.ResponseWriter, r *http.Request) {
	cafeID := queryID(r, "cafe_id")
	if cafeID <= 0 {
		h.Notify.Error(r.Context(), sessionID(r), service.MsgSelectCafe)
		redirect(w, r, dishesPath(0))
		return
	}
	form := service.DishForm{CafeID: cafeID}
	h.render(w, r, view.PageDishForm, form.Title(), navAdmin, view.DishFormData{Form: form})
}

func (h *Handler) editDish(w http.ResponseWriter, r *http.Request) {
	cafeID := queryID(r, "cafe_id")
	dishID, ok := domain.ParseID(mux.Vars(r)["dishId"])
	if !ok || cafeID <= 0 {
		h.Notify.Error(r.Context(), sessionID(r), service.MsgDishLoadFail)
		redirect(w, r, dishesPath(cafeID))
		return
	}

	form, err := h.Admin.EditDish(r.Context(), cafeID, dishID)
	if err != nil {
		h.fail(r, "get dish", err, service.MsgDishLoadFail)
		redirect(w, r, dishesPath(cafeID))
		return
	}
	h.render(w, r, view.PageDishForm, form.Title(), navAdmin, view.DishFormData{Form: form})
}

func (h *Handler) saveDish(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(r); err != nil {
		h.fail(r, "parse dish form", err, service.MsgDishSaveFail)
		redirect(w, r, dishesPath(0))
		return
	}
	form := dishForm(r)

	image, file, err := formImage(r)
	if err != nil {
		h.fail(r, "read dish image", err, service.MsgImageUpload)
	}
	if file != nil {
		defer file.Close()
	}

	result, err := h.Admin.SaveDish(r.Context(), form, image)

	var formErr *service.FormError
	switch {
	case errors.As(err, &formErr):
		h.render(w, r, view.PageDishForm, form.Title(), navAdmin, view.DishFormData{Form: form, Errors: formErr})
		return
	case errors.Is(err, service.ErrImageUpload):
		h.succeed(r, dishSavedMessage(result))
		h.fail(r, "upload dish image", err, service.MsgImageUpload)
	case err != nil:
		h.fail(r, "save dish", err, service.MsgDishSaveFail)
		h.render(w, r, view.PageDishForm, form.Title(), navAdmin, view.DishFormData{Form: form})
		return
	default:
		h.succeed(r, dishSavedMessage(result))
	}
	redirect(w, r, dishesPath(form.CafeID))
}

func dishSavedMessage(result service.SaveResult) string {
	if result.Created {
		return service.MsgDishCreated
	}
	return service.MsgDishUpdated
}

func (h *Handler) confirmDeleteDish(w http.ResponseWriter, r *http.Request) {
	cafeID := queryID(r, "cafe_id")
	dishID, ok := domain.ParseID(mux.Vars(r)["dishId"])
	if !ok || cafeID <= 0 {
		redirect(w, r, dishesPath(cafeID))
		return
	}
	h.render(w, r, view.PageConfirm, "Delete dish", navAdmin, view.Confirm{
		Message: "Delete this dish?",
		Action:  fmt.Sprintf("/admin/dishes/%d/delete?cafe_id=%d", dishID, cafeID),
		Cancel:  dishesPath(cafeID),
	})
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	cafeID := queryID(r, "cafe_id")
	dishID, ok := domain.ParseID(mux.Vars(r)["dishId"])
	if !ok || cafeID <= 0 {
		redirect(w, r, dishesPath(cafeID))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	err := h.Admin.DeleteDish(r.Context(), cafeID, dishID, r.PostFormValue("confirm") == "yes")
	switch {
	case errors.Is(err, service.ErrConfirmationRequired):
		redirect(w, r, fmt.Sprintf("/admin/dishes/%d/delete?cafe_id=%d", dishID, cafeID))
		return
	case err != nil:
		h.fail(r, "delete dish", err, service.MsgDishDeleteFail)
	default:
		h.succeed(r, service.MsgDishDeleted)
	}
	redirect(w, r, dishesPath(cafeID))
}
