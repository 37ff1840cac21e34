package frontmatter

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders metadata back into a front-matter block. Re-parsing the
// output through this package yields an equivalent record; optional fields
// are emitted only when present. Values are double-quoted so dates and
// slugs survive YAML scalar resolution untouched.
func Serialize(m *PostMetadata) string {
	lines := []string{Delimiter}

	lines = append(lines, "title: "+quote(m.Title))
	lines = append(lines, "slug: "+quote(m.Slug))
	lines = append(lines, "date: "+quote(m.Date))

	quoted := make([]string, len(m.Tags))
	for i, tag := range m.Tags {
		quoted[i] = quote(tag)
	}
	lines = append(lines, "tags: ["+strings.Join(quoted, ", ")+"]")

	lines = append(lines, "summary: "+quote(m.Summary))

	if m.Section != "" {
		lines = append(lines, "section: "+quote(m.Section))
	}
	if m.FeaturedImage != "" {
		lines = append(lines, "featuredImage: "+quote(m.FeaturedImage))
	}

	lines = append(lines, Delimiter)
	return strings.Join(lines, "\n")
}

func quote(s string) string {
	return strconv.Quote(s)
}

// asString converts arbitrary front-matter values to their string form;
// tag lists may carry numbers or booleans in the wild.
func asString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
