package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageCatalog   = "catalog"
	PageAdmin     = "admin"
	PageCheckForm = "check_form"
	PageCafes     = "cafes"
	PageCafeForm  = "cafe_form"
	PageDishes    = "dishes"
	PageDishForm  = "dish_form"
	PageConfirm   = "confirm"
	PageAnalytics = "analytics"
	PageReview    = "review"
	PageError     = "error"
)

var pages = []string{
	PageCatalog, PageAdmin, PageCheckForm, PageCafes, PageCafeForm, PageDishes,
	PageDishForm, PageConfirm, PageAnalytics, PageReview, PageError,
}

// Page is what every template receives. Data holds the page view-model.
type Page struct {
	Title          string
	Nav            string
	Toasts         []domain.Notification
	CSRFField      template.HTML
	RefreshSeconds int
	Data           interface{}
}

// AdminData is the admin start page: recent checks plus an optional QR overlay.
type AdminData struct {
	Checks service.CheckList
	QR     *service.QROverlay
}

type CafesData struct {
	Rows   []service.CafeRow
	Empty  string
	Failed string
}

type CafeFormData struct {
	Form   service.CafeForm
	Errors *service.FormError
}

type DishFormData struct {
	Form   service.DishForm
	Errors *service.FormError
}

// Confirm asks before a destructive request is sent.
type Confirm struct {
	Message string
	Warning string
	Action  string
	Cancel  string
}

// ErrorPanel replaces the whole page body.
type ErrorPanel struct {
	Message string
}

type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Render executes into a buffer first so a template failure never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"dataURL":     dataURL,
	"svg":         func(s string) template.HTML { return template.HTML(s) },
	"ttlSeconds":  func(n domain.Notification) float64 { return n.TTL.Seconds() },
	"starList":    starList,
	"add":         func(a, b int) int { return a + b },
	"ratingLabel": service.RatingLabel,
	"isMenu":      func(s service.Section) bool { return s == service.SectionMenu },
	"medalClass":  medalClass,
	"levelClass":  levelClass,
	"money":       service.FormatMoney,
	"fieldError":  fieldError,
}

func fieldError(err *service.FormError, field string) string {
	if err == nil {
		return ""
	}
	return err.Fields[field]
}

// dataURL lets inline QR images through; anything else is dropped.
func dataURL(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") {
		return template.URL(s)
	}
	return ""
}

type starView struct {
	Value   int
	Lit     bool
	Checked bool
}

// starList orders the stars 5..1; the stylesheet reverses them so that
// hovering a star also lights the lower ones.
func starList(w service.StarWidget) []starView {
	lit := w.Stars()
	out := make([]starView, 0, len(lit))
	for n := len(lit); n >= 1; n-- {
		out = append(out, starView{Value: n, Lit: lit[n-1], Checked: n == w.Committed})
	}
	return out
}

func medalClass(m service.Medal) string {
	switch m {
	case service.MedalGold:
		return "text-yellow-500"
	case service.MedalSilver:
		return "text-gray-400"
	case service.MedalBronze:
		return "text-orange-600"
	default:
		return "text-gray-300"
	}
}

func levelClass(l domain.Level) string {
	switch l {
	case domain.LevelError:
		return "bg-red-500"
	case domain.LevelSuccess:
		return "bg-green-500"
	default:
		return "bg-blue-500"
	}
}
