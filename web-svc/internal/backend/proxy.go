package backend

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var (
	forwardedRequestHeaders = []string{"Accept", "If-None-Match", "If-Modified-Since"}

	// Hop-by-hop headers such as Connection or Transfer-Encoding stay behind.
	forwardedResponseHeaders = []string{
		"Content-Type",
		"Content-Length",
		"Cache-Control",
		"ETag",
		"Last-Modified",
		"Expires",
	}
)

// UploadsProxy forwards GET requests for backend-hosted files (cafe and dish
// images live under /uploads/ on the backend) so relative image URLs resolve
// against this service.
type UploadsProxy struct {
	client *Client
}

func NewUploadsProxy(client *Client) *UploadsProxy {
	return &UploadsProxy{client: client}
}

func (p *UploadsProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	url := p.client.baseURL + r.URL.Path
	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, nil)
	if err != nil {
		log.WithError(err).Error("failed to create proxy request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	copyHeaders(req.Header, r.Header, forwardedRequestHeaders)

	resp, err := p.client.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("path", r.URL.Path).Error("failed to proxy upload")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header, forwardedResponseHeaders)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Warn("failed to copy proxied upload")
	}
}

func copyHeaders(dst, src http.Header, keys []string) {
	for _, key := range keys {
		if values := src.Values(key); len(values) > 0 {
			dst[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
		}
	}
}
