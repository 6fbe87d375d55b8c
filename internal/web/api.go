package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkhubaishan/mk-portfolio/internal/content"
	"github.com/mkhubaishan/mk-portfolio/internal/locale"
	"github.com/mkhubaishan/mk-portfolio/internal/seo"
)

// localeParam resolves the :lang parameter or writes a 404.
func localeParam(c *gin.Context) (locale.Locale, bool) {
	l, ok := locale.Parse(c.Param("lang"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported locale"})
		return "", false
	}
	return l, true
}

// apiContent handles GET /api/content/:lang
func (s *Server) apiContent(c *gin.Context) {
	l, ok := localeParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.portfolio.Localize(l))
}

// apiMetadata handles GET /api/metadata/:lang
func (s *Server) apiMetadata(c *gin.Context) {
	l, ok := localeParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, seo.For(l, s.cfg.BaseURL))
}

// apiProject handles GET /api/projects/:lang/:slug
func (s *Server) apiProject(c *gin.Context) {
	l, ok := localeParam(c)
	if !ok {
		return
	}
	if _, err := s.portfolio.Project(c.Param("slug")); err != nil {
		if errors.Is(err, content.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, p := range s.portfolio.Localize(l).Projects {
		if p.Slug == c.Param("slug") {
			c.JSON(http.StatusOK, p)
			return
		}
	}
}

type localeResponse struct {
	Path       string `json:"path"`
	Locale     string `json:"locale"`
	Dir        string `json:"dir"`
	OGLocale   string `json:"og_locale"`
	Prefixed   bool   `json:"prefixed"`
	TogglePath string `json:"toggle_path"`
}

// apiLocale handles GET /api/locale?path=/en/projects
func (s *Server) apiLocale(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	l := locale.FromPath(path)
	c.JSON(http.StatusOK, localeResponse{
		Path:       path,
		Locale:     l.String(),
		Dir:        l.Dir(),
		OGLocale:   l.OGLocale(),
		Prefixed:   locale.HasPrefix(path),
		TogglePath: locale.TogglePath(path),
	})
}

func (s *Server) manifest(c *gin.Context) {
	l := locale.Match(c.GetHeader("Accept-Language"))
	if q, ok := locale.Parse(c.Query("lang")); ok {
		l = q
	}
	c.Header("Content-Type", "application/manifest+json")
	c.JSON(http.StatusOK, seo.Manifest(l))
}

func (s *Server) robots(c *gin.Context) {
	c.String(http.StatusOK, seo.RobotsTxt(s.cfg.BaseURL))
}

func (s *Server) sitemap(c *gin.Context) {
	body, err := seo.Sitemap(s.cfg.BaseURL, s.startedAt)
	if err != nil {
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	DB        string    `json:"db"`
}

func (s *Server) health(c *gin.Context) {
	dbStatus := "disabled"
	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := s.store.Ping(ctx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}
	c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		DB:        dbStatus,
	})
}
