package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shourya-8416/portfolio-core/internal/middleware"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/blog"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/github"
	"github.com/Shourya-8416/portfolio-core/internal/modules/project"
	"github.com/Shourya-8416/portfolio-core/internal/modules/stats/discussion"
	"github.com/Shourya-8416/portfolio-core/internal/modules/syndication/feed"
	"github.com/Shourya-8416/portfolio-core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "portfolio-core",
		"author":   "Shourya <https://github.com/Shourya-8416>",
		"version":  "1.0.0",
		"homepage": "https://github.com/Shourya-8416/portfolio-core",
		"issues":   "https://github.com/Shourya-8416/portfolio-core/issues",
	}

	apiPrefix := "/api/v2"

	// Shared services
	contentClient := github.NewClient(a.cfg.GitHub, a.logger)
	blogSvc := blog.NewService(contentClient, a.logger)
	metricsSvc := discussion.NewService(a.cfg.GitHub, a.cfg.MetricsTTL(), a.logger)

	// Root-level endpoints
	feed.RegisterRoutes(r, blogSvc, a.cfg.Site) // /feed, /feed.xml, /atom.xml

	// Versioned API
	api := r.Group(apiPrefix)
	api.Use(middleware.HTTPCache(a.rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       a.cfg.HTTPCacheTTL(),
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(apiPrefix),
	}))

	// App info endpoints
	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	api.GET("/clean_cache", func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), a.rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
	})

	// Content
	blog.NewHandler(blogSvc, metricsSvc).RegisterRoutes(api)

	// Portfolio
	project.NewHandler().RegisterRoutes(api)
}

func httpCacheSkipPaths(apiPrefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(apiPrefix), "/")
	if p == "" {
		p = "/api/v2"
	}
	return []string{
		p + "/uptime",
		p + "/clean_cache",
		p + "/metrics/refresh",
	}
}

var processStart = time.Now()
