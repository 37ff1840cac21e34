package blog

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Shourya-8416/portfolio-core/internal/modules/content/frontmatter"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/github"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/section"
)

// fakeSource serves documents from memory, keyed by download URL.
type fakeSource struct {
	files     []github.File
	documents map[string]string
}

func (f *fakeSource) ListDocuments(context.Context) []github.File { return f.files }

func (f *fakeSource) FetchContent(_ context.Context, url string) (string, bool) {
	doc, ok := f.documents[url]
	return doc, ok
}

func document(slug, date string, extra ...string) string {
	doc := "---\n" +
		fmt.Sprintf("title: %q\n", "Post "+slug) +
		fmt.Sprintf("slug: %q\n", slug) +
		fmt.Sprintf("date: %q\n", date) +
		"tags: [\"go\"]\n" +
		fmt.Sprintf("summary: %q\n", "About "+slug)
	for _, line := range extra {
		doc += line + "\n"
	}
	return doc + "---\nBody of " + slug + "\n"
}

func sourceWith(docs map[string]string) *fakeSource {
	src := &fakeSource{documents: map[string]string{}}
	for name, doc := range docs {
		url := "https://raw.example/" + name
		src.files = append(src.files, github.File{
			Name: name, Path: "posts/" + name, Type: "file", DownloadURL: url,
		})
		src.documents[url] = doc
	}
	return src
}

func TestGetAllPosts_SortedNewestFirstWithBadDocumentDropped(t *testing.T) {
	src := &fakeSource{documents: map[string]string{}}
	for i, doc := range []string{
		document("oldest", "2024-01-01"),
		document("newest", "2024-03-01"),
		document("middle", "2024-02-01"),
		"---\ntitle: \"No tags\"\nslug: \"broken\"\ndate: \"2024-04-01\"\nsummary: \"s\"\n---\nbody\n",
	} {
		url := fmt.Sprintf("https://raw.example/doc-%d.md", i)
		src.files = append(src.files, github.File{
			Name: fmt.Sprintf("doc-%d.md", i), Type: "file", DownloadURL: url,
		})
		src.documents[url] = doc
	}

	posts := NewService(src, zap.NewNop()).GetAllPosts(context.Background())

	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Metadata.Slug)
	assert.Equal(t, "middle", posts[1].Metadata.Slug)
	assert.Equal(t, "oldest", posts[2].Metadata.Slug)
	assert.Equal(t, "Body of newest\n", posts[0].Content)
}

func TestGetAllPosts_FetchFailureDropsOnlyThatDocument(t *testing.T) {
	src := sourceWith(map[string]string{
		"good.md": document("good", "2024-01-01"),
	})
	src.files = append(src.files, github.File{
		Name: "gone.md", Type: "file", DownloadURL: "https://raw.example/gone.md",
	})

	posts := NewService(src, zap.NewNop()).GetAllPosts(context.Background())

	require.Len(t, posts, 1)
	assert.Equal(t, "good", posts[0].Metadata.Slug)
}

func TestGetAllPosts_EmptyListingYieldsEmptyCollection(t *testing.T) {
	posts := NewService(&fakeSource{}, zap.NewNop()).GetAllPosts(context.Background())

	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGetAllPosts_EqualDatesKeepListingOrder(t *testing.T) {
	src := &fakeSource{documents: map[string]string{}}
	for _, slug := range []string{"first", "second", "third"} {
		url := "https://raw.example/" + slug + ".md"
		src.files = append(src.files, github.File{
			Name: slug + ".md", Type: "file", DownloadURL: url,
		})
		src.documents[url] = document(slug, "2024-05-05")
	}

	posts := NewService(src, zap.NewNop()).GetAllPosts(context.Background())

	require.Len(t, posts, 3)
	assert.Equal(t, "first", posts[0].Metadata.Slug)
	assert.Equal(t, "second", posts[1].Metadata.Slug)
	assert.Equal(t, "third", posts[2].Metadata.Slug)
}

func TestGetAllPosts_UnparseableDateSortsLast(t *testing.T) {
	src := sourceWith(map[string]string{
		"dated.md":   document("dated", "2020-01-01"),
		"undated.md": document("undated", "sometime in spring"),
	})

	posts := NewService(src, zap.NewNop()).GetAllPosts(context.Background())

	require.Len(t, posts, 2)
	assert.Equal(t, "dated", posts[0].Metadata.Slug)
	assert.Equal(t, "undated", posts[1].Metadata.Slug)
	assert.Equal(t, "sometime in spring", posts[1].Metadata.Date)
}

func TestFindBySlug(t *testing.T) {
	posts := []Post{
		{Metadata: metaWith("heap-sort", "", nil)},
		{Metadata: metaWith("queues-in-java", "", nil)},
	}

	found := FindBySlug(posts, "queues-in-java")
	require.NotNil(t, found)
	assert.Equal(t, "queues-in-java", found.Metadata.Slug)

	assert.Nil(t, FindBySlug(posts, "Queues-In-Java"))
	assert.Nil(t, FindBySlug(posts, "missing"))
}

func TestFilterBySection(t *testing.T) {
	posts := []Post{
		{Metadata: metaWith("a", "java", nil)},
		{Metadata: metaWith("b", "JAVA", nil)},
		{Metadata: metaWith("c", "aws", nil)},
		{Metadata: metaWith("d", "", nil)},
	}

	got := FilterBySection(posts, section.Java)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Metadata.Slug)
	assert.Equal(t, "b", got[1].Metadata.Slug)
}

func TestFilterByTags_AndSemanticsCaseInsensitive(t *testing.T) {
	posts := []Post{
		{Metadata: metaWith("both", "", []string{"Java", "Spring-Boot"})},
		{Metadata: metaWith("one", "", []string{"java"})},
		{Metadata: metaWith("neither", "", []string{"aws"})},
	}

	got := FilterByTags(posts, []string{"JAVA", "spring-boot"})

	require.Len(t, got, 1)
	assert.Equal(t, "both", got[0].Metadata.Slug)
}

func TestFilterByTags_EmptyRequestMatchesAll(t *testing.T) {
	posts := []Post{{Metadata: metaWith("a", "", []string{"go"})}}

	assert.Len(t, FilterByTags(posts, nil), 1)
}

func TestReadingTime(t *testing.T) {
	cases := map[string]string{
		"":                "1 min read",
		"   \n\t":         "1 min read",
		"just a few words": "1 min read",
		strings.Repeat("word ", 200): "1 min read",
		strings.Repeat("word ", 201): "2 min read",
		strings.Repeat("word ", 999): "5 min read",
	}
	for content, want := range cases {
		assert.Equal(t, want, ReadingTime(content))
	}
}

func TestCountBySection(t *testing.T) {
	posts := []Post{
		{Metadata: metaWith("a", "java", nil)},
		{Metadata: metaWith("b", "JAVA", nil)},
		{Metadata: metaWith("c", "aws", nil)},
		{Metadata: metaWith("d", "", nil)},
		{Metadata: metaWith("e", "rust", nil)},
	}

	counts := CountBySection(posts)

	assert.Equal(t, map[section.Section]int{
		section.DSA:        0,
		section.Java:       2,
		section.SpringBoot: 0,
		section.AWS:        1,
	}, counts)
}

func metaWith(slug, sec string, tags []string) frontmatter.PostMetadata {
	return frontmatter.PostMetadata{Slug: slug, Section: sec, Tags: tags}
}
