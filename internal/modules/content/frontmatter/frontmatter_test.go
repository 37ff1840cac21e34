package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() map[string]any {
	return map[string]any{
		"title":   "Building Scalable APIs",
		"slug":    "building-scalable-apis",
		"date":    "2024-03-01",
		"tags":    []any{"java", "spring-boot"},
		"summary": "How to build APIs that scale.",
	}
}

func TestParseRemote_Valid(t *testing.T) {
	meta, err := ParseRemote(validRaw())

	require.NoError(t, err)
	assert.Equal(t, "Building Scalable APIs", meta.Title)
	assert.Equal(t, "building-scalable-apis", meta.Slug)
	assert.Equal(t, "2024-03-01", meta.Date)
	assert.Equal(t, []string{"java", "spring-boot"}, meta.Tags)
	assert.Equal(t, "How to build APIs that scale.", meta.Summary)
	assert.Equal(t, meta.Summary, meta.Description)
	assert.Empty(t, meta.Section)
	assert.Empty(t, meta.FeaturedImage)
}

func TestParseRemote_FailClosedPerRequiredField(t *testing.T) {
	for _, field := range []string{"title", "slug", "date", "tags", "summary"} {
		t.Run(field, func(t *testing.T) {
			raw := validRaw()
			delete(raw, field)

			meta, err := ParseRemote(raw)

			assert.Nil(t, meta)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, field, missing.Field)
		})
	}
}

func TestParseRemote_WrongTypeRejects(t *testing.T) {
	raw := validRaw()
	raw["title"] = 42

	meta, err := ParseRemote(raw)

	assert.Nil(t, meta)
	assert.Error(t, err)
}

func TestParseRemote_TagsMustBeNonEmptyArray(t *testing.T) {
	raw := validRaw()
	raw["tags"] = "java"
	_, err := ParseRemote(raw)
	assert.Error(t, err)

	raw["tags"] = []any{}
	_, err = ParseRemote(raw)
	assert.Error(t, err)
}

func TestParseRemote_TagElementsCoercedToText(t *testing.T) {
	raw := validRaw()
	raw["tags"] = []any{"aws", 2024, true}

	meta, err := ParseRemote(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"aws", "2024", "true"}, meta.Tags)
}

func TestParseRemote_DescriptionSubstitutesForSummary(t *testing.T) {
	raw := validRaw()
	delete(raw, "summary")
	raw["description"] = "Described instead."

	meta, err := ParseRemote(raw)

	require.NoError(t, err)
	assert.Equal(t, "Described instead.", meta.Summary)
	assert.Equal(t, "Described instead.", meta.Description)
}

func TestParseRemote_WrongTypeSummaryDoesNotFallBack(t *testing.T) {
	raw := validRaw()
	raw["summary"] = 7
	raw["description"] = "valid description"

	meta, err := ParseRemote(raw)

	assert.Nil(t, meta)
	assert.Error(t, err)
}

func TestParseRemote_OptionalFields(t *testing.T) {
	raw := validRaw()
	raw["section"] = "SpringBoot"
	raw["featuredImage"] = "/images/cover.png"

	meta, err := ParseRemote(raw)

	require.NoError(t, err)
	assert.Equal(t, "SpringBoot", meta.Section)
	assert.Equal(t, "/images/cover.png", meta.FeaturedImage)
}

func TestParseRemote_NonStringSectionIgnored(t *testing.T) {
	raw := validRaw()
	raw["section"] = 3

	meta, err := ParseRemote(raw)

	require.NoError(t, err)
	assert.Empty(t, meta.Section)
}

func TestParse_LocalSlugFallback(t *testing.T) {
	raw := validRaw()
	delete(raw, "slug")

	meta, err := Parse(raw, "from-filename")

	require.NoError(t, err)
	assert.Equal(t, "from-filename", meta.Slug)
}

func TestParse_ExplicitSlugWinsOverFallback(t *testing.T) {
	meta, err := Parse(validRaw(), "from-filename")

	require.NoError(t, err)
	assert.Equal(t, "building-scalable-apis", meta.Slug)
}

func TestParseRemote_NoSlugFallback(t *testing.T) {
	raw := validRaw()
	delete(raw, "slug")

	meta, err := ParseRemote(raw)

	assert.Nil(t, meta)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "slug", missing.Field)
}

func TestSplitDocument(t *testing.T) {
	doc := "---\n" +
		"title: \"Hello\"\n" +
		"tags: [\"go\"]\n" +
		"---\n" +
		"# Heading\n\nBody text.\n"

	raw, body, err := SplitDocument(doc)

	require.NoError(t, err)
	assert.Equal(t, "Hello", raw["title"])
	assert.Equal(t, "# Heading\n\nBody text.\n", body)
}

func TestSplitDocument_NoFrontMatter(t *testing.T) {
	_, _, err := SplitDocument("just a markdown file\n")
	assert.Error(t, err)
}

func TestSplitDocument_Unterminated(t *testing.T) {
	_, _, err := SplitDocument("---\ntitle: \"Hello\"\n")
	assert.Error(t, err)
}

func TestSerialize_RoundTrip(t *testing.T) {
	cases := map[string]*PostMetadata{
		"required only": {
			Title:       "Post One",
			Slug:        "post-one",
			Date:        "2024-01-01",
			Tags:        []string{"dsa"},
			Summary:     "First post.",
			Description: "First post.",
		},
		"with optionals": {
			Title:         "Queues in Java: a \"deep\" dive",
			Slug:          "queues-in-java",
			Date:          "2024-02-15",
			Tags:          []string{"java", "collections", "data structures"},
			Summary:       "Everything about queues.",
			Description:   "Everything about queues.",
			Section:       "JAVA",
			FeaturedImage: "/images/queues.png",
		},
	}

	for name, meta := range cases {
		t.Run(name, func(t *testing.T) {
			raw, _, err := SplitDocument(Serialize(meta))
			require.NoError(t, err)

			got, err := ParseRemote(raw)
			require.NoError(t, err)
			assert.Equal(t, meta, got)
		})
	}
}
