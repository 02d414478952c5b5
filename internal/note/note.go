// Package note provides the note entity: tag extraction, slugification,
// filename derivation, and the on-disk markdown format.
package note

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TagMarker prefixes title tokens that should be treated as tags.
const TagMarker = "#"

// Extension is the file extension for all note files.
const Extension = ".md"

var (
	nonSlugRunes = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace   = regexp.MustCompile(`\s+`)

	// FilenamePattern matches valid note filenames: an epoch-millis prefix,
	// a slug, and the markdown extension.
	FilenamePattern = regexp.MustCompile(`^[0-9]+-[a-z0-9-]*\.md$`)
)

// ExtractTags scans the whitespace-delimited tokens of title and returns the
// ones carrying a leading tag marker, marker stripped, in first-occurrence
// order. Duplicate tokens are kept as-is.
func ExtractTags(title string) []string {
	var tags []string
	for _, token := range strings.Fields(title) {
		if strings.HasPrefix(token, TagMarker) && len(token) > len(TagMarker) {
			tags = append(tags, strings.TrimPrefix(token, TagMarker))
		}
	}
	return tags
}

// Slugify lowercases title, strips everything outside letters, digits, and
// whitespace, then collapses whitespace runs into single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugRunes.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespace.ReplaceAllString(s, "-")
}

// Filename derives the note filename for a title created at the given time.
// The millisecond prefix keeps filenames unique under normal operation; two
// notes created within the same millisecond with the same slug collide.
func Filename(title string, createdAt time.Time) string {
	return strconv.FormatInt(createdAt.UnixMilli(), 10) + "-" + Slugify(title) + Extension
}

// Render produces the full file body for a new note. The body always starts
// with the title heading followed by the creation timestamp and tag metadata;
// content, when non-empty, seeds the Notes section.
func Render(title string, createdAt time.Time, tags []string, content string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString("Created: ")
	b.WriteString(createdAt.Format(time.RFC3339))
	b.WriteString("\n")
	b.WriteString("Tags: ")
	b.WriteString(strings.Join(tags, ", "))
	b.WriteString("\n\n")
	b.WriteString("## Notes\n\n")
	if content != "" {
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String()
}

// TitleFromContent returns the display title of a note body: the first line
// with its heading marker stripped.
func TitleFromContent(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	return strings.TrimPrefix(line, "# ")
}

// TagsFromContent returns the tags recorded on the note's Tags metadata line,
// or nil when the line is absent or empty.
func TagsFromContent(content string) []string {
	for _, line := range strings.Split(content, "\n") {
		value, ok := strings.CutPrefix(line, "Tags: ")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		var tags []string
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	}
	return nil
}
