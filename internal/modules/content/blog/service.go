// Package blog assembles the post collection: remote listing, concurrent
// fetch and parse, ordering, and the lookup/filter primitives the HTTP
// surface is built from.
package blog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Shourya-8416/portfolio-core/internal/modules/content/frontmatter"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/github"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/section"
)

// fetchConcurrency bounds the fan-out against the raw content host.
const fetchConcurrency = 8

// Post is one fully parsed blog post. Posts are value types; nothing mutates
// them after assembly.
type Post struct {
	Metadata frontmatter.PostMetadata `json:"metadata"`
	Content  string                   `json:"content"`
}

// ContentSource is the slice of the GitHub client this service needs.
type ContentSource interface {
	ListDocuments(ctx context.Context) []github.File
	FetchContent(ctx context.Context, downloadURL string) (string, bool)
}

type Service struct {
	source ContentSource
	logger *zap.Logger
}

func NewService(source ContentSource, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// GetAllPosts lists the content repository and resolves every document in
// parallel. A document that fails to download or validate is dropped with a
// warning; one bad document never takes down the batch. The result is
// ordered newest first, with the listing order preserved between posts whose
// dates compare equal or unparseable.
func (s *Service) GetAllPosts(ctx context.Context) []Post {
	files := s.source.ListDocuments(ctx)
	if len(files) == 0 {
		return []Post{}
	}

	slots := make([]*Post, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			content, ok := s.source.FetchContent(gctx, file.DownloadURL)
			if !ok {
				return nil
			}
			meta, body, err := frontmatter.ParseDocument(content)
			if err != nil {
				s.logger.Warn("document rejected",
					zap.String("file", file.Name), zap.Error(err))
				return nil
			}
			slots[i] = &Post{Metadata: *meta, Content: body}
			return nil
		})
	}
	// Workers always return nil; Wait is only a join point.
	_ = g.Wait()

	posts := make([]Post, 0, len(slots))
	for _, p := range slots {
		if p != nil {
			posts = append(posts, *p)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return ParseDate(posts[i].Metadata.Date).After(ParseDate(posts[j].Metadata.Date))
	})
	return posts
}

// FindBySlug returns the post whose slug matches exactly, or nil. Slugs are
// case-sensitive identifiers, not display text.
func FindBySlug(posts []Post, slug string) *Post {
	for i := range posts {
		if posts[i].Metadata.Slug == slug {
			return &posts[i]
		}
	}
	return nil
}

// FilterBySection keeps the posts whose section belongs to s. Relative order
// is preserved.
func FilterBySection(posts []Post, s section.Section) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if s.Matches(p.Metadata.Section) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByTags keeps the posts carrying every requested tag, compared
// case-insensitively. An empty request matches everything.
func FilterByTags(posts []Post, tags []string) []Post {
	if len(tags) == 0 {
		return posts
	}
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if hasAllTags(p.Metadata.Tags, tags) {
			out = append(out, p)
		}
	}
	return out
}

// wordsPerMinute is the assumed reading speed for the estimate.
const wordsPerMinute = 200

// ReadingTime estimates how long a post body takes to read, as display
// text. Never shorter than one minute.
func ReadingTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// CountBySection tallies posts per section. Every known section appears in
// the result, zero included; posts without a valid section are not counted.
func CountBySection(posts []Post) map[section.Section]int {
	counts := make(map[section.Section]int, len(section.All))
	for _, s := range section.All {
		counts[s] = 0
	}
	for _, p := range posts {
		if s, ok := section.Normalize(p.Metadata.Section); ok {
			counts[s]++
		}
	}
	return counts
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate resolves a post's date string for ordering and syndication. The
// stored string is never rewritten; an unparseable date yields the zero time
// and sorts to the end.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
