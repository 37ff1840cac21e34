// Package github talks to the GitHub REST API for the remote content
// repository: directory listing plus raw file downloads. Every failure is
// absorbed here and surfaces to callers as an empty or absent result, so an
// unreachable content host degrades to an empty blog instead of an error.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Shourya-8416/portfolio-core/internal/config"
	"go.uber.org/zap"
)

const (
	defaultAPIBase = "https://api.github.com"
	acceptHeader   = "application/vnd.github.v3+json"

	// markdownExt is the only recognized document extension.
	markdownExt = ".md"
)

// File is one entry from the contents API: the RawDocument descriptor.
type File struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Type        string `json:"type"` // "file" | "dir"
	DownloadURL string `json:"download_url"`
}

// Client lists and fetches documents from one owner/repo coordinate.
type Client struct {
	httpClient *http.Client
	apiBase    string
	token      string
	coord      config.RepoCoordinate
	logger     *zap.Logger
}

// NewClient builds a client for the configured content repository.
func NewClient(cfg config.GitHubConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiBase:    defaultAPIBase,
		token:      cfg.Token,
		coord:      cfg.Content,
		logger:     logger,
	}
}

// ListDocuments returns the markdown file descriptors in the content
// repository. On any failure (non-2xx, transport error, malformed body) it
// returns an empty slice; callers cannot distinguish "no documents" from
// "listing failed", and that is deliberate.
func (c *Client) ListDocuments(ctx context.Context) []File {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.apiBase, c.coord.Owner, c.coord.Repo, c.coord.Path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("content listing request build failed", zap.Error(err))
		return nil
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("content listing failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("content listing returned non-success status",
			zap.Int("status", resp.StatusCode))
		return nil
	}

	var files []File
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		c.logger.Warn("content listing response malformed", zap.Error(err))
		return nil
	}

	out := make([]File, 0, len(files))
	for _, f := range files {
		if f.Type == "file" && strings.HasSuffix(f.Name, markdownExt) {
			out = append(out, f)
		}
	}
	return out
}

// FetchContent downloads the raw text behind one descriptor's download URL.
// The second return is false on any failure; the caller drops the document.
func (c *Client) FetchContent(ctx context.Context, downloadURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		c.logger.Warn("content fetch request build failed",
			zap.String("url", downloadURL), zap.Error(err))
		return "", false
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("content fetch failed",
			zap.String("url", downloadURL), zap.Error(err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("content fetch returned non-success status",
			zap.String("url", downloadURL), zap.Int("status", resp.StatusCode))
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("content fetch body read failed",
			zap.String("url", downloadURL), zap.Error(err))
		return "", false
	}
	return string(body), true
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", acceptHeader)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
}
