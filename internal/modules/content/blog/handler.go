package blog

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shourya-8416/portfolio-core/internal/modules/content/frontmatter"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/section"
	"github.com/Shourya-8416/portfolio-core/internal/modules/processing/markdown"
	"github.com/Shourya-8416/portfolio-core/internal/modules/stats/discussion"
	"github.com/Shourya-8416/portfolio-core/internal/pkg/response"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc        *Service
	metricsSvc *discussion.Service
}

func NewHandler(svc *Service, metricsSvc *discussion.Service) *Handler {
	return &Handler{svc: svc, metricsSvc: metricsSvc}
}

// RegisterRoutes mounts blog routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.list)
	posts.GET("/:slug", h.getBySlug)
	posts.GET("/:slug/metrics", h.getMetrics)

	sections := rg.Group("/sections")
	sections.GET("", h.listSections)
	sections.GET("/:section", h.listBySection)

	rg.POST("/metrics/refresh", h.refreshMetrics)
}

// postView is a post as served: metadata plus body plus the joined
// discussion counters, zero when no thread exists or metrics are disabled.
type postView struct {
	frontmatter.PostMetadata
	Content       string `json:"content,omitempty"`
	HTML          string `json:"html,omitempty"`
	ReadingTime   string `json:"readingTime"`
	CommentCount  int    `json:"commentCount"`
	ReactionCount int    `json:"reactionCount"`
}

// sectionView is one section with its post count, for the sections listing.
type sectionView struct {
	Section   section.Section `json:"section"`
	PostCount int             `json:"postCount"`
}

// list GET /posts?section=&tags=a,b
func (h *Handler) list(c *gin.Context) {
	posts := h.svc.GetAllPosts(c.Request.Context())

	if raw := c.Query("section"); raw != "" {
		sec, ok := section.Normalize(raw)
		if !ok {
			response.BadRequest(c, "unknown section: "+raw)
			return
		}
		posts = FilterBySection(posts, sec)
	}
	posts = FilterByTags(posts, splitTags(c.Query("tags")))

	response.OK(c, h.toViews(c, posts))
}

// getBySlug GET /posts/:slug?format=html
func (h *Handler) getBySlug(c *gin.Context) {
	posts := h.svc.GetAllPosts(c.Request.Context())
	post := FindBySlug(posts, c.Param("slug"))
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}

	view := postView{
		PostMetadata: post.Metadata,
		Content:      post.Content,
		ReadingTime:  ReadingTime(post.Content),
	}
	if c.Query("format") == "html" {
		view.Content = ""
		view.HTML = markdown.Render(post.Content)
	}
	if m, err := h.metricsSvc.FetchOne(c.Request.Context(), post.Metadata.Slug); err == nil && m != nil {
		view.CommentCount = m.CommentCount
		view.ReactionCount = m.ReactionCount
	}
	response.OK(c, view)
}

// getMetrics GET /posts/:slug/metrics
//
// Always answers with counters. Disabled metrics, a missing thread, and a
// failed lookup all read as zeros here; the tri-state lives below the HTTP
// boundary.
func (h *Handler) getMetrics(c *gin.Context) {
	m, err := h.metricsSvc.FetchOne(c.Request.Context(), c.Param("slug"))
	if err != nil || m == nil {
		response.OK(c, discussion.Metrics{})
		return
	}
	response.OK(c, *m)
}

// listSections GET /sections
func (h *Handler) listSections(c *gin.Context) {
	counts := CountBySection(h.svc.GetAllPosts(c.Request.Context()))
	views := make([]sectionView, len(section.All))
	for i, s := range section.All {
		views[i] = sectionView{Section: s, PostCount: counts[s]}
	}
	response.OK(c, views)
}

// listBySection GET /sections/:section
func (h *Handler) listBySection(c *gin.Context) {
	sec, ok := section.Normalize(c.Param("section"))
	if !ok {
		response.NotFoundMsg(c, "unknown section")
		return
	}

	posts := FilterBySection(h.svc.GetAllPosts(c.Request.Context()), sec)
	response.OK(c, h.toViews(c, posts))
}

// refreshMetrics POST /metrics/refresh
func (h *Handler) refreshMetrics(c *gin.Context) {
	h.metricsSvc.ClearCache()
	response.NoContent(c)
}

func (h *Handler) toViews(c *gin.Context, posts []Post) []postView {
	metrics := h.metricsSvc.FetchAll(c.Request.Context())
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = postView{
			PostMetadata: p.Metadata,
			Content:      p.Content,
			ReadingTime:  ReadingTime(p.Content),
		}
		if m, ok := metrics[p.Metadata.Slug]; ok {
			views[i].CommentCount = m.CommentCount
			views[i].ReactionCount = m.ReactionCount
		}
	}
	return views
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
