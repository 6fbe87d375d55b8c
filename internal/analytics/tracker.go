package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkhubaishan/mk-portfolio/internal/locale"
)

// skipPrefixes are never tracked: assets, admin pages and machine endpoints.
var skipPrefixes = []string{
	"/static/", "/admin", "/api/", "/favicon", "/privacy", "/health",
	"/manifest.webmanifest", "/robots.txt", "/sitemap.xml",
}

// Tracker records page views in the background.
type Tracker struct {
	store *Store
	salt  string
	wg    sync.WaitGroup
}

// NewTracker creates a tracker with a fresh per-process hashing salt.
func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store, salt: RandomToken()}
}

// RandomToken returns 32 random bytes hex-encoded.
func RandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate random token:", err)
	}
	return hex.EncodeToString(b)
}

// HashIP hashes an address with the tracker's salt. The result is stable for
// the life of the process.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// ShouldTrack reports whether a request path counts as a page view.
func ShouldTrack(path string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Middleware records page views, honoring Do Not Track.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !ShouldTrack(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}
		visit := Visit{
			HashedIP:  t.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Locale:    locale.FromPath(path).String(),
		}
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.store.Record(ctx, visit); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
	}
}

// Wait blocks until in-flight inserts finish.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
