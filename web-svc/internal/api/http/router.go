package httpapi

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type RouterOptions struct {
	// CORSOrigins replaces the permissive default when set.
	CORSOrigins []string

	// CSRFKey enables form protection; it must be 32 bytes.
	CSRFKey       []byte
	SecureCookies bool
}

func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	r := mux.NewRouter()
	r.Use(logRequests, withSession)
	if len(opts.CSRFKey) > 0 {
		r.Use(csrf.Protect(opts.CSRFKey,
			csrf.Secure(opts.SecureCookies),
			csrf.Path("/"),
			csrf.SameSite(csrf.SameSiteLaxMode),
		))
	}
	handler.RegisterRoutes(r)

	c := cors.Default()
	if len(opts.CORSOrigins) > 0 {
		c = cors.New(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		})
	}
	return c.Handler(r)
}
