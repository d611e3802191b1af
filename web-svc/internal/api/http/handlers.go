package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"overcooked-simplified/web-svc/internal/service"
	"overcooked-simplified/web-svc/internal/view"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	Catalog   *service.CatalogService
	Admin     *service.AdminService
	Analytics *service.AnalyticsService
	Reviews   *service.ReviewService
	Notify    *service.Notifications
	View      *view.Renderer
	Uploads   http.Handler

	// AnalyticsRefresh is the dashboard reload period; zero disables it.
	AnalyticsRefresh time.Duration
}

func NewHandler(
	catalog *service.CatalogService,
	admin *service.AdminService,
	analytics *service.AnalyticsService,
	reviews *service.ReviewService,
	notify *service.Notifications,
	renderer *view.Renderer,
	uploads http.Handler,
	analyticsRefresh time.Duration,
) *Handler {
	return &Handler{
		Catalog:          catalog,
		Admin:            admin,
		Analytics:        analytics,
		Reviews:          reviews,
		Notify:           notify,
		View:             renderer,
		Uploads:          uploads,
		AnalyticsRefresh: analyticsRefresh,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/", h.catalog).Methods("GET")
	r.HandleFunc("/index.html", h.catalog).Methods("GET")
	r.HandleFunc("/cafes/{id}/menu", h.cafeMenu).Methods("GET")

	r.HandleFunc("/admin", h.adminHome).Methods("GET")
	r.HandleFunc("/admin/checks/new", h.checkForm).Methods("GET")
	r.HandleFunc("/admin/checks/new", h.submitCheckForm).Methods("POST")
	r.HandleFunc("/admin/checks/{id}/view", h.viewCheck).Methods("GET")

	r.HandleFunc("/admin/cafes", h.listCafes).Methods("GET")
	r.HandleFunc("/admin/cafes", h.saveCafe).Methods("POST")
	r.HandleFunc("/admin/cafes/new", h.newCafe).Methods("GET")
	r.HandleFunc("/admin/cafes/{id}/edit", h.editCafe).Methods("GET")
	r.HandleFunc("/admin/cafes/{id}/delete", h.confirmDeleteCafe).Methods("GET")
	r.HandleFunc("/admin/cafes/{id}/delete", h.deleteCafe).Methods("POST")

	r.HandleFunc("/admin/dishes", h.dishManager).Methods("GET")
	r.HandleFunc("/admin/dishes", h.saveDish).Methods("POST")
	r.HandleFunc("/admin/dishes/new", h.newDish).Methods("GET")
	r.HandleFunc("/admin/dishes/{dishId}/edit", h.editDish).Methods("GET")
	r.HandleFunc("/admin/dishes/{dishId}/delete", h.confirmDeleteDish).Methods("GET")
	r.HandleFunc("/admin/dishes/{dishId}/delete", h.deleteDish).Methods("POST")

	r.HandleFunc("/analytics", h.analytics).Methods("GET")
	r.HandleFunc("/analytics.html", h.analytics).Methods("GET")

	r.HandleFunc("/review", h.reviewPage).Methods("GET")
	r.HandleFunc("/review.html", h.reviewPage).Methods("GET")
	r.HandleFunc("/review", h.submitReview).Methods("POST")

	if h.Uploads != nil {
		r.PathPrefix("/uploads/").Handler(h.Uploads).Methods("GET", "HEAD")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "web-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// render drains the session's toasts into the page and writes it. Only a
// template failure turns into a 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title, nav string, data interface{}) {
	h.renderPage(w, r, http.StatusOK, name, view.Page{Title: title, Nav: nav, Data: data})
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	page.Toasts = h.Notify.Drain(r.Context(), sessionID(r))
	page.CSRFField = csrf.TemplateField(r)

	var buf bytes.Buffer
	if err := h.View.Render(&buf, name, page); err != nil {
		log.WithError(err).WithField("page", name).Error("failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError replaces the whole page body with a message.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.renderPage(w, r, status, view.PageError, view.Page{Title: "Error", Data: view.ErrorPanel{Message: message}})
}

// redirect finishes a POST the post/redirect/get way.
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// fail logs a failed call at the handling boundary and queues the user message.
func (h *Handler) fail(r *http.Request, op string, err error, message string) {
	logBackendError(op, err)
	h.Notify.Error(r.Context(), sessionID(r), message)
}

func (h *Handler) succeed(r *http.Request, message string) {
	h.Notify.Success(r.Context(), sessionID(r), message)
}
