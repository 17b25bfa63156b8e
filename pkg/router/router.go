package router

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method   string
	segments []string // "*" matches one segment, trailing "**" matches the rest
	handler  HandlerFunc
}

// Router dispatches by method and path over a single catch-all ServeMux
// handler, logging every request with its status, duration and request ID.
// Routes are tried in registration order, so register specific paths before
// wildcard ones.
type Router struct {
	mux    *http.ServeMux
	routes []route
}

func New() *Router {
	r := &Router{mux: http.NewServeMux()}
	r.mux.HandleFunc("/", r.dispatch)
	return r
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	reqID := uuid.New().String()[:8]
	w.Header().Set("X-Request-ID", reqID)
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	segments := splitPath(req.URL.Path)
	matched := false
	pathKnown := false
	for _, rt := range r.routes {
		if !matchSegments(segments, rt.segments) {
			continue
		}
		pathKnown = true
		if rt.method == req.Method {
			rt.handler(lrw, req)
			matched = true
			break
		}
	}
	if !matched {
		if pathKnown {
			http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
		} else {
			http.Error(lrw, "Not Found", http.StatusNotFound)
		}
	}

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, reqID, colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(path, pattern []string) bool {
	for i, seg := range pattern {
		if seg == "**" {
			return len(path) >= i
		}
		if i >= len(path) {
			return false
		}
		if seg != "*" && seg != path[i] {
			return false
		}
	}
	return len(path) == len(pattern)
}

// PathSegment returns the i-th path segment of the request, or "" when the
// path is shorter. Handlers use it to pull IDs out of wildcard positions.
func PathSegment(req *http.Request, i int) string {
	segments := splitPath(req.URL.Path)
	if i < 0 || i >= len(segments) {
		return ""
	}
	return segments[i]
}

// --- Register paths ---

func (r *Router) register(method, path string, handler HandlerFunc) {
	r.routes = append(r.routes, route{
		method:   method,
		segments: splitPath(path),
		handler:  handler,
	})
}

func (r *Router) GET(path string, handler HandlerFunc) {
	r.register(http.MethodGet, path, handler)
}

func (r *Router) POST(path string, handler HandlerFunc) {
	r.register(http.MethodPost, path, handler)
}

func (r *Router) PUT(path string, handler HandlerFunc) {
	r.register(http.MethodPut, path, handler)
}

func (r *Router) PATCH(path string, handler HandlerFunc) {
	r.register(http.MethodPatch, path, handler)
}

func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Handler exposes the underlying mux, mainly for httptest servers.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Start server ---

func (r *Router) Start(addr string) error {
	log.Printf("🚀 Server listening on %s%s%s", colorGreen, addr, colorReset)
	return http.ListenAndServe(addr, r.mux)
}

// --- Logging response writer to capture status codes ---

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---

func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
