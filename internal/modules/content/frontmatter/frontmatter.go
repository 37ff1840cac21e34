// Package frontmatter validates and normalizes blog post metadata.
//
// Parsing is fail-closed: a document either yields a fully populated
// PostMetadata or an error naming the first offending field, never a
// partial record. One rejected document never aborts a batch; callers log
// and move on.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter marks the start and end of a front-matter block.
const Delimiter = "---"

// PostMetadata is the validated metadata of one blog post.
//
// Summary and Description are aliases of the same concept: whichever key the
// source document supplies, both fields hold the same value after parsing.
// Date stays verbatim; it is only parsed when ordering posts.
type PostMetadata struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Date          string   `json:"date"`
	Tags          []string `json:"tags"`
	Section       string   `json:"section,omitempty"`
	Summary       string   `json:"summary"`
	Description   string   `json:"description"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
}

// MissingFieldError reports which required field invalidated a document.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Parse validates a raw front-matter mapping in local-document mode: a
// missing or invalid slug falls back to the filename-derived fallbackSlug.
func Parse(raw map[string]any, fallbackSlug string) (*PostMetadata, error) {
	return parse(raw, fallbackSlug, true)
}

// ParseRemote validates a raw front-matter mapping in remote-document mode.
// Remote documents must be addressable independent of filename, so the slug
// is strictly required and there is no fallback.
func ParseRemote(raw map[string]any) (*PostMetadata, error) {
	return parse(raw, "", false)
}

// Validation order is fixed: title, slug, date, tags, summary/description.
func parse(raw map[string]any, fallbackSlug string, allowSlugFallback bool) (*PostMetadata, error) {
	title, ok := nonEmptyString(raw["title"])
	if !ok {
		return nil, &MissingFieldError{Field: "title"}
	}

	slug, ok := nonEmptyString(raw["slug"])
	if !ok {
		if !allowSlugFallback || strings.TrimSpace(fallbackSlug) == "" {
			return nil, &MissingFieldError{Field: "slug"}
		}
		slug = fallbackSlug
	}

	date, ok := nonEmptyString(raw["date"])
	if !ok {
		return nil, &MissingFieldError{Field: "date"}
	}

	rawTags, ok := raw["tags"].([]any)
	if !ok || len(rawTags) == 0 {
		return nil, &MissingFieldError{Field: "tags"}
	}
	tags := make([]string, len(rawTags))
	for i, tag := range rawTags {
		tags[i] = asString(tag)
	}

	summary, ok := nonEmptyString(raw["summary"])
	if !ok {
		if _, present := raw["summary"]; present && raw["summary"] != nil {
			// A summary of the wrong type is a rejection, not a fallback.
			return nil, &MissingFieldError{Field: "summary"}
		}
		summary, ok = nonEmptyString(raw["description"])
		if !ok {
			return nil, &MissingFieldError{Field: "summary"}
		}
	}

	meta := &PostMetadata{
		Title:       title,
		Slug:        slug,
		Date:        date,
		Tags:        tags,
		Summary:     summary,
		Description: summary,
	}
	if section, ok := nonEmptyString(raw["section"]); ok {
		meta.Section = section
	}
	if img, ok := nonEmptyString(raw["featuredImage"]); ok {
		meta.FeaturedImage = img
	}
	return meta, nil
}

// ParseDocument splits a raw remote document into validated metadata and
// body text. The document must open with a delimiter line, carry a YAML
// mapping, and close with another delimiter line.
func ParseDocument(content string) (*PostMetadata, string, error) {
	raw, body, err := SplitDocument(content)
	if err != nil {
		return nil, "", err
	}
	meta, err := ParseRemote(raw)
	if err != nil {
		return nil, "", err
	}
	return meta, body, nil
}

// SplitDocument separates the front-matter mapping from the body without
// validating fields.
func SplitDocument(content string) (map[string]any, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	rest, found := strings.CutPrefix(strings.TrimLeft(content, " \t\r\n"), Delimiter+"\n")
	if !found {
		return nil, "", fmt.Errorf("document has no front-matter block")
	}

	block, body, found := strings.Cut(rest, "\n"+Delimiter)
	if !found {
		return nil, "", fmt.Errorf("front-matter block is unterminated")
	}
	body = strings.TrimPrefix(body, "\n")

	raw := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, "", fmt.Errorf("front-matter is not a valid mapping: %w", err)
	}
	return raw, body, nil
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
