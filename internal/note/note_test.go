package note

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestExtractTags(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  []string
	}{
		{"no tags", "Daily Log", nil},
		{"single tag", "Team Sync #work", []string{"work"}},
		{"multiple tags", "Team Sync #work #q3", []string{"work", "q3"}},
		{"order follows first occurrence", "#b first #a second", []string{"b", "a"}},
		{"duplicates are kept", "#todo now #todo later", []string{"todo", "todo"}},
		{"bare marker is ignored", "stray # marker", nil},
		{"marker inside token is ignored", "c#sharp notes", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractTags(tc.title)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractTags(%q) = %v, want %v", tc.title, got, tc.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Daily Log", "daily-log"},
		{"Team Sync #work #q3", "team-sync-work-q3"},
		{"  spaced   out  ", "spaced-out"},
		{"Symbols!? (kept out)", "symbols-kept-out"},
		{"already-hyphenated", "alreadyhyphenated"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestFilenameMatchesPattern(t *testing.T) {
	now := time.Now()
	titles := []string{"Daily Log", "Team Sync #work #q3", "x", "1234"}

	for _, title := range titles {
		name := Filename(title, now)
		if !FilenamePattern.MatchString(name) {
			t.Errorf("Filename(%q) = %q does not match %v", title, name, FilenamePattern)
		}
		if !strings.HasPrefix(name, "1") {
			t.Errorf("expected millis prefix in %q", name)
		}
	}
}

func TestFilenameTimestampPrefix(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	got := Filename("Daily Log", at)
	want := "1700000000123-daily-log.md"
	if got != want {
		t.Fatalf("Filename = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	body := Render("Team Sync #work #q3", at, []string{"work", "q3"}, "")

	lines := strings.Split(body, "\n")
	if lines[0] != "# Team Sync #work #q3" {
		t.Fatalf("first line = %q", lines[0])
	}
	if lines[2] != "Created: 2026-03-14T09:26:53Z" {
		t.Fatalf("created line = %q", lines[2])
	}
	if lines[3] != "Tags: work, q3" {
		t.Fatalf("tags line = %q", lines[3])
	}
	if !strings.Contains(body, "## Notes\n") {
		t.Fatalf("expected Notes section in %q", body)
	}
}

func TestRenderWithContent(t *testing.T) {
	body := Render("Idea", time.Now(), nil, "remember the milk")
	if !strings.HasSuffix(body, "## Notes\n\nremember the milk\n") {
		t.Fatalf("expected seeded content at end of body, got %q", body)
	}
}

func TestRenderEmptyTags(t *testing.T) {
	body := Render("Plain", time.Now(), nil, "")
	if !strings.Contains(body, "Tags: \n") {
		t.Fatalf("expected empty tags line, got %q", body)
	}
}

func TestTitleFromContent(t *testing.T) {
	if got := TitleFromContent("# Hello World\n\nbody"); got != "Hello World" {
		t.Fatalf("got %q", got)
	}
	if got := TitleFromContent("no heading"); got != "no heading" {
		t.Fatalf("got %q", got)
	}
	if got := TitleFromContent(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestTagsFromContent(t *testing.T) {
	body := Render("Team Sync #work #q3", time.Now(), []string{"work", "q3"}, "")
	got := TagsFromContent(body)
	want := []string{"work", "q3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TagsFromContent = %v, want %v", got, want)
	}

	empty := Render("Plain", time.Now(), nil, "")
	if got := TagsFromContent(empty); got != nil {
		t.Fatalf("expected nil for empty tags line, got %v", got)
	}
}
