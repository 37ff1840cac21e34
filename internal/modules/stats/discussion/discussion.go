// Package discussion reads comment and reaction counts for blog posts from
// the GitHub Discussions GraphQL API. Metrics are an enhancement: without a
// configured token every query reports empty, and the rest of the site keeps
// working with zero counts.
package discussion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Shourya-8416/portfolio-core/internal/config"
	"github.com/Shourya-8416/portfolio-core/internal/pkg/ttlcache"
	"go.uber.org/zap"
)

const (
	defaultEndpoint = "https://api.github.com/graphql"

	// batchSize bounds the all-discussions query to the most recent threads.
	batchSize = 100

	slugPathPrefix = "blog/"
)

// Metrics is one post's discussion counters.
type Metrics struct {
	CommentCount  int `json:"commentCount"`
	ReactionCount int `json:"reactionCount"`
}

// Service queries discussion metrics and maintains the shared TTL cache.
type Service struct {
	httpClient *http.Client
	endpoint   string
	token      string
	coord      config.RepoCoordinate
	cache      *ttlcache.Cache[Metrics]
	logger     *zap.Logger
}

// NewService builds the metrics service. ttl governs cache validity; the
// cache is owned here so tests and credential-less deployments get a fresh,
// resettable instance per service.
func NewService(cfg config.GitHubConfig, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   defaultEndpoint,
		token:      cfg.Token,
		coord:      cfg.Discussion,
		cache:      ttlcache.New[Metrics](ttl),
		logger:     logger,
	}
}

// Enabled reports whether a credential is configured.
func (s *Service) Enabled() bool { return s.token != "" }

// ClearCache drops every cached metric. TTL expiry is otherwise the only
// invalidation.
func (s *Service) ClearCache() { s.cache.Clear() }

// FetchAll queries the most recent discussion threads in one batch and
// returns metrics keyed by derived slug. Failures degrade to an empty map.
func (s *Service) FetchAll(ctx context.Context) map[string]Metrics {
	result := map[string]Metrics{}
	if !s.Enabled() {
		return result
	}

	var resp struct {
		Repository struct {
			Discussions struct {
				Nodes []discussionNode `json:"nodes"`
			} `json:"discussions"`
		} `json:"repository"`
	}
	err := s.query(ctx, allDiscussionsQuery, map[string]any{
		"owner": s.coord.Owner,
		"repo":  s.coord.Repo,
		"first": batchSize,
	}, &resp)
	if err != nil {
		s.logger.Warn("discussion batch query failed", zap.Error(err))
		return result
	}

	for _, node := range resp.Repository.Discussions.Nodes {
		slug := deriveSlug(node.Title)
		if slug == "" {
			continue
		}
		m := node.metrics()
		result[slug] = m
		s.cache.Set(slug, m)
	}
	return result
}

// FetchOne resolves metrics for a single slug, cache first. A post with no
// discussion thread yet returns zero-valued metrics and a nil error; a
// transport failure returns a nil Metrics so the caller can tell
// "no thread" from "could not determine".
func (s *Service) FetchOne(ctx context.Context, slug string) (*Metrics, error) {
	if cached, ok := s.cache.Get(slug); ok {
		return &cached, nil
	}
	if !s.Enabled() {
		return nil, nil
	}

	var resp struct {
		Search struct {
			Nodes []discussionNode `json:"nodes"`
		} `json:"search"`
	}
	searchQuery := fmt.Sprintf("repo:%s/%s in:title %s", s.coord.Owner, s.coord.Repo, slug)
	err := s.query(ctx, searchDiscussionQuery, map[string]any{
		"searchQuery": searchQuery,
	}, &resp)
	if err != nil {
		s.logger.Warn("discussion search failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	if len(resp.Search.Nodes) == 0 {
		return &Metrics{}, nil
	}

	m := resp.Search.Nodes[0].metrics()
	s.cache.Set(slug, m)
	return &m, nil
}

type discussionNode struct {
	Title    string `json:"title"`
	Comments struct {
		TotalCount int `json:"totalCount"`
	} `json:"comments"`
	Reactions struct {
		TotalCount int `json:"totalCount"`
	} `json:"reactions"`
}

func (n discussionNode) metrics() Metrics {
	return Metrics{
		CommentCount:  n.Comments.TotalCount,
		ReactionCount: n.Reactions.TotalCount,
	}
}

// deriveSlug turns a discussion title into a post slug: lower-case,
// whitespace runs become hyphens, and an optional leading "blog/" path
// segment is stripped. The result is not validated against the content
// repository's slug set, so a colliding title can misattribute metrics;
// preserved as-is from the site this replaces.
func deriveSlug(title string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	return strings.TrimPrefix(slug, slugPathPrefix)
}

const allDiscussionsQuery = `
query GetAllDiscussions($owner: String!, $repo: String!, $first: Int!) {
  repository(owner: $owner, name: $repo) {
    discussions(first: $first, orderBy: { field: CREATED_AT, direction: DESC }) {
      nodes {
        title
        comments { totalCount }
        reactions { totalCount }
      }
    }
  }
}`

const searchDiscussionQuery = `
query SearchDiscussion($searchQuery: String!) {
  search(query: $searchQuery, type: DISCUSSION, first: 1) {
    nodes {
      ... on Discussion {
        title
        comments { totalCount }
        reactions { totalCount }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

func (s *Service) query(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "token "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("graphql endpoint returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}
