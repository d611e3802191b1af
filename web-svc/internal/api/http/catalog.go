package httpapi

import (
	"net/http"

	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/service"
	"overcooked-simplified/web-svc/internal/view"

	"github.com/gorilla/mux"
)

func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	var page service.CatalogPage
	if err := h.Catalog.LoadCafes(r.Context(), &page); err != nil {
		h.fail(r, "list cafes", err, service.MsgCatalogLoadFail)
	}
	h.render(w, r, view.PageCatalog, "Cafes", view.PageCatalog, page)
}

// cafeMenu shows one cafe's menu; when it cannot be loaded the cafe grid stays.
func (h *Handler) cafeMenu(w http.ResponseWriter, r *http.Request) {
	var page service.CatalogPage

	id, ok := domain.ParseID(mux.Vars(r)["id"])
	if ok {
		err := h.Catalog.ShowMenu(r.Context(), &page, id, r.URL.Query().Get("name"))
		if err == nil {
			h.render(w, r, view.PageCatalog, page.MenuTitle, view.PageCatalog, page)
			return
		}
		h.fail(r, "cafe menu", err, service.MsgMenuLoadFail)
	} else {
		h.Notify.Error(r.Context(), sessionID(r), service.MsgMenuLoadFail)
	}

	h.Catalog.HideMenu(&page)
	if err := h.Catalog.LoadCafes(r.Context(), &page); err != nil {
		h.fail(r, "list cafes", err, service.MsgCatalogLoadFail)
	}
	h.render(w, r, view.PageCatalog, "Cafes", view.PageCatalog, page)
}
