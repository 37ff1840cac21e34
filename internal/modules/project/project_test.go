package project

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBySlug(t *testing.T) {
	p := FindBySlug("chatbot-rag")

	require.NotNil(t, p)
	assert.Equal(t, "Context-Aware Chatbot with Vector Search (RAG)", p.Title)

	assert.Nil(t, FindBySlug("does-not-exist"))
}

func TestAllHaveRequiredFields(t *testing.T) {
	require.NotEmpty(t, All())
	for _, p := range All() {
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.ShortDescription)
		assert.NotEmpty(t, p.FullDescription)
		assert.NotEmpty(t, p.TechStack)
		assert.NotEmpty(t, p.Img)
	}
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api/v2"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/projects", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["data"], len(All()))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/projects/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
