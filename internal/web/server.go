// Package web serves the portfolio: the two locale route trees, the JSON
// content API, SEO documents, static assets and the analytics dashboard.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mkhubaishan/mk-portfolio/internal/analytics"
	"github.com/mkhubaishan/mk-portfolio/internal/config"
	"github.com/mkhubaishan/mk-portfolio/internal/content"
	"github.com/mkhubaishan/mk-portfolio/internal/i18n"
	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options are the dependencies of a Server. Store and Tracker may be nil,
// which disables the dashboard and visit tracking.
type Options struct {
	Config    *config.Config
	Bundle    *i18n.Bundle
	Portfolio *content.Portfolio
	Store     *analytics.Store
	Tracker   *analytics.Tracker
	Version   string
}

// Server wires the handlers onto a gin engine.
type Server struct {
	cfg        *config.Config
	bundle     *i18n.Bundle
	portfolio  *content.Portfolio
	store      *analytics.Store
	tracker    *analytics.Tracker
	version    string
	startedAt  time.Time
	adminToken string
	limiter    *rate.Limiter
	engine     *gin.Engine
}

// New builds the server and registers all routes.
func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Bundle == nil || opts.Portfolio == nil {
		return nil, fmt.Errorf("web: config, bundle and portfolio are required")
	}
	if err := opts.Portfolio.Validate(); err != nil {
		return nil, fmt.Errorf("web: invalid portfolio: %w", err)
	}

	s := &Server{
		cfg:        opts.Config,
		bundle:     opts.Bundle,
		portfolio:  opts.Portfolio,
		store:      opts.Store,
		tracker:    opts.Tracker,
		version:    opts.Version,
		startedAt:  time.Now(),
		adminToken: analytics.RandomToken(),
		limiter:    rate.NewLimiter(rate.Limit(opts.Config.Admin.LoginRateLimit), opts.Config.Admin.LoginBurst),
	}

	tmpl, err := template.New("").Funcs(s.funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}

	r := gin.New()
	r.Use(RequestID(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	if s.tracker != nil && s.cfg.TrackingEnabled {
		r.Use(s.tracker.Middleware())
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.redirectToLocale)
	for _, l := range locale.Supported {
		group := r.Group(l.Prefix())
		group.GET("", s.home)
		group.GET("/", s.home)
	}

	r.GET("/manifest.webmanifest", s.manifest)
	r.GET("/robots.txt", s.robots)
	r.GET("/sitemap.xml", s.sitemap)
	r.GET("/health", s.health)
	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.Use(cors.New(s.corsConfig()))
	api.GET("/content/:lang", s.apiContent)
	api.GET("/metadata/:lang", s.apiMetadata)
	api.GET("/projects/:lang/:slug", s.apiProject)
	api.GET("/locale", s.apiLocale)

	s.registerAdmin(r)
	r.NoRoute(s.notFound)

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept-Language"},
		MaxAge:       12 * time.Hour,
	}
	for _, origin := range s.cfg.AllowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = s.cfg.AllowedOrigins
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

func (s *Server) funcMap() template.FuncMap {
	return template.FuncMap{
		"t": func(l locale.Locale, key string) string {
			return s.bundle.T(l, key)
		},
		"year": func() int {
			return time.Now().Year()
		},
	}
}
