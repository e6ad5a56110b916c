package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/communal.kitchen/internal/platform/branding"
	"github.com/louisbranch/communal.kitchen/internal/platform/timeouts"
	webi18n "github.com/louisbranch/communal.kitchen/internal/services/web/i18n"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/flash"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/httpx"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/observability"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
	"github.com/louisbranch/communal.kitchen/internal/services/web/static"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage"
	webtemplates "github.com/louisbranch/communal.kitchen/internal/services/web/templates"
	"golang.org/x/text/message"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	AppName  string
	// SessionSecret verifies the HS256 sign-in handoff tokens minted by the
	// auth surface.
	SessionSecret string
	// TrustForwardedProto enables X-Forwarded-Proto scheme resolution for
	// deployments behind a TLS-terminating proxy.
	TrustForwardedProto bool
}

// Server hosts the community recipes HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	config   Config
	appName  string
	store    storage.Store
	sessions *sessionStore
	actions  *actionGuard
	policy   requestmeta.SchemePolicy
}

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag string.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := webi18n.ResolveTag(r)
	if setCookie {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}

// NewHandler creates the HTTP handler for the web service.
func NewHandler(config Config, store storage.Store) (http.Handler, error) {
	_, handler, err := newHandler(config, store)
	return handler, err
}

func newHandler(config Config, store storage.Store) (*handler, http.Handler, error) {
	if store == nil {
		return nil, nil, errors.New("storage is required")
	}
	if strings.TrimSpace(config.SessionSecret) == "" {
		return nil, nil, errors.New("session secret is required")
	}

	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	h := &handler{
		config:   config,
		appName:  appName,
		store:    store,
		sessions: newSessionStore(),
		actions:  newActionGuard(),
		policy:   requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto},
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))

	mux.HandleFunc(routepath.Recipes, h.handleRecipes)
	mux.HandleFunc(routepath.RecipesGrid, h.handleRecipesGrid)
	mux.HandleFunc(routepath.RecipesPrefix, h.handleRecipeAction)
	mux.HandleFunc(routepath.AuthCallback, h.handleAuthCallback)
	mux.HandleFunc(routepath.AuthLogout, h.handleAuthLogout)
	mux.HandleFunc(routepath.Landing, h.handleLanding)

	mux.HandleFunc(routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	chained := httpx.Chain(
		mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	)
	return h, chained, nil
}

// NewServer builds a configured web server around an opened store.
func NewServer(config Config, store storage.Store) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config, store)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// handleLanding serves the public landing page.
func (h *handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Landing {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	page, toast := h.pageContext(w, r)
	title := webtemplates.T(page.Loc, "title.landing", h.appName)
	metaDesc := webtemplates.T(page.Loc, "meta.description")
	h.writePage(w, r, http.StatusOK, title, metaDesc, page, toast, webtemplates.LandingPage(page))
}

// pageContext assembles the shared layout context and drains any flash notice.
func (h *handler) pageContext(w http.ResponseWriter, r *http.Request) (webtemplates.PageContext, *webtemplates.Toast) {
	printer, lang := localizer(w, r)
	page := webtemplates.PageContext{
		Lang:         lang,
		Loc:          printer,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		AppName:      h.appName,
	}
	if sess := sessionFromRequest(r, h.sessions); sess != nil {
		page.SignedIn = true
		page.UserName = sess.displayName
	}
	return page, h.resolveFlashToast(w, r, printer)
}

func (h *handler) resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer) *webtemplates.Toast {
	notice, ok := flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	text := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if text == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: text,
	}
}

// writePage renders a full document around the page body.
func (h *handler) writePage(w http.ResponseWriter, r *http.Request, status int, title string, metaDesc string, page webtemplates.PageContext, toast *webtemplates.Toast, body templ.Component) {
	var rendered bytes.Buffer
	layout := webtemplates.Layout(title, metaDesc, page, toast, body)
	if err := layout.Render(httpx.RequestContext(r), &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := httpx.WriteHTML(w, status, rendered.String()); err != nil {
		log.Printf("write page: %v", err)
	}
}

// writeFragment renders HTMX fragments back-to-back in one response.
func (h *handler) writeFragment(w http.ResponseWriter, r *http.Request, status int, fragments ...templ.Component) {
	var rendered bytes.Buffer
	ctx := httpx.RequestContext(r)
	for _, fragment := range fragments {
		if fragment == nil {
			continue
		}
		if err := fragment.Render(ctx, &rendered); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}
	if err := httpx.WriteHTML(w, status, rendered.String()); err != nil {
		log.Printf("write fragment: %v", err)
	}
}
