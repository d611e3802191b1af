package httpapi

import (
	"errors"
	"net/http"

	"overcooked-simplified/web-svc/internal/backend"
	"overcooked-simplified/web-svc/internal/service"
	"overcooked-simplified/web-svc/internal/view"
)

// analytics runs one full dashboard cycle per request. Failed sections are
// rendered in their error state; the page itself always renders.
func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Analytics.Load(r.Context())
	if err != nil {
		logBackendError("analytics", err)
	}
	h.renderPage(w, r, http.StatusOK, view.PageAnalytics, view.Page{
		Title:          "Analytics",
		Nav:            "analytics",
		RefreshSeconds: int(h.AnalyticsRefresh.Seconds()),
		Data:           dash,
	})
}

func (h *Handler) reviewPage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.loadReview(w, r)
	if !ok {
		return
	}
	h.render(w, r, view.PageReview, "Review", "", page)
}

// submitReview re-renders the form with what was entered unless the reviews
// were accepted, in which case the thank-you panel replaces it.
func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	page, ok := h.loadReview(w, r)
	if !ok {
		return
	}

	err := h.Reviews.Submit(r.Context(), &page, ratingInputs(r))
	switch {
	case errors.Is(err, service.ErrNoRatings):
		h.Notify.Error(r.Context(), sessionID(r), service.MsgRateOneDish)
	case err != nil:
		h.fail(r, "submit reviews", err, service.MsgReviewSendFail)
	default:
		h.succeed(r, service.MsgReviewThankYou)
	}
	h.render(w, r, view.PageReview, "Review", "", page)
}

func (h *Handler) loadReview(w http.ResponseWriter, r *http.Request) (service.ReviewPage, bool) {
	id, err := h.Reviews.CheckIDFromQuery(r.URL.Query())
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, service.MsgNoCheckID)
		return service.ReviewPage{}, false
	}

	page, err := h.Reviews.LoadCheck(r.Context(), id)
	if err != nil {
		logBackendError("get check", err)
		status := http.StatusBadGateway
		if errors.Is(err, backend.ErrNotFound) {
			status = http.StatusNotFound
		}
		h.renderError(w, r, status, service.MsgCheckLoadFail)
		return service.ReviewPage{}, false
	}
	return page, true
}
