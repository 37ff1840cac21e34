package project

import (
	"github.com/gin-gonic/gin"

	"github.com/Shourya-8416/portfolio-core/internal/pkg/response"
)

// Handler handles project HTTP requests.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// RegisterRoutes mounts project routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.GET("", h.list)
	projects.GET("/:slug", h.getBySlug)
}

// list GET /projects
func (h *Handler) list(c *gin.Context) {
	response.OK(c, All())
}

// getBySlug GET /projects/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	p := FindBySlug(c.Param("slug"))
	if p == nil {
		response.NotFoundMsg(c, "project not found")
		return
	}
	response.OK(c, *p)
}
