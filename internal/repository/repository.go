// Package repository encapsulates all filesystem interactions for notes.
package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/md-notes/mdnotes/internal/logger"
	"github.com/md-notes/mdnotes/internal/note"
)

// Repository owns a directory of note files and exposes create, enumerate,
// search, and remove operations. Every operation is stateless; the directory
// is the only state.
type Repository struct {
	dir string
	log *logger.Logger
}

// New returns a repository rooted at dir, creating the directory if absent.
func New(dir string, log *logger.Logger) (*Repository, error) {
	if log == nil {
		log = logger.Discard()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create notes directory: %w", err)
	}
	return &Repository{dir: dir, log: log}, nil
}

// Dir returns the repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Created describes the outcome of a Create call.
type Created struct {
	Filename string
	Path     string
	Tags     []string
}

// Create writes a new note for the given title. The title's tag tokens become
// the note's tags; content, when non-empty, seeds the Notes section. Returns
// ErrEmptyTitle when the title is blank after trimming.
func (r *Repository) Create(title, content string) (*Created, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now()
	tags := note.ExtractTags(title)
	filename := note.Filename(title, now)
	body := note.Render(title, now, tags, content)

	path := filepath.Join(r.dir, filename)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return nil, fmt.Errorf("write note: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	r.log.NoteCreated(filename, tags)
	return &Created{Filename: filename, Path: abs, Tags: tags}, nil
}

// Summary describes a note as seen by List.
type Summary struct {
	Filename   string
	Title      string
	Tags       []string
	Size       int64
	ModifiedAt time.Time
}

// List enumerates every note in the repository directory, in the order the
// directory listing returns them. Files that vanish between enumeration and
// read are skipped. An empty directory yields an empty slice, not an error.
func (r *Repository) List() ([]Summary, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read notes directory: %w", err)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), note.Extension) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				r.log.NoteSkipped(entry.Name(), "vanished during scan")
				continue
			}
			return nil, fmt.Errorf("stat note %s: %w", entry.Name(), err)
		}

		content, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			if os.IsNotExist(err) {
				r.log.NoteSkipped(entry.Name(), "vanished during scan")
				continue
			}
			return nil, fmt.Errorf("read note %s: %w", entry.Name(), err)
		}

		summaries = append(summaries, Summary{
			Filename:   entry.Name(),
			Title:      note.TitleFromContent(string(content)),
			Tags:       note.TagsFromContent(string(content)),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	return summaries, nil
}

// Search returns the filenames of all notes whose full content contains term,
// case-insensitively, in directory-listing order. No match yields an empty
// slice. Returns ErrEmptyQuery when term is blank after trimming.
func (r *Repository) Search(term string) ([]string, error) {
	return r.scan(term, func(content string) string { return content })
}

// SearchTags behaves like Search but matches only against each note's Tags
// metadata line.
func (r *Repository) SearchTags(term string) ([]string, error) {
	return r.scan(term, func(content string) string {
		return strings.Join(note.TagsFromContent(content), ", ")
	})
}

func (r *Repository) scan(term string, haystack func(content string) string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyQuery
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read notes directory: %w", err)
	}

	needle := strings.ToLower(term)
	matches := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), note.Extension) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			if os.IsNotExist(err) {
				r.log.NoteSkipped(entry.Name(), "vanished during scan")
				continue
			}
			return nil, fmt.Errorf("read note %s: %w", entry.Name(), err)
		}

		if strings.Contains(strings.ToLower(haystack(string(content))), needle) {
			matches = append(matches, entry.Name())
		}
	}

	return matches, nil
}

// Delete removes exactly one note. The caller is responsible for any
// confirmation; Delete executes unconditionally. Returns ErrNotFound when the
// file does not exist.
func (r *Repository) Delete(filename string) error {
	path, err := r.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove note: %w", err)
	}
	r.log.NoteDeleted(filename)
	return nil
}

// Open validates that the note exists and returns its absolute path for an
// editor to consume. Returns ErrNotFound when the file does not exist.
func (r *Repository) Open(filename string) (string, error) {
	path, err := r.resolve(filename)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// Read returns the raw content of a note, used as the fallback payload when
// launching an editor fails.
func (r *Repository) Read(filename string) (string, error) {
	path, err := r.resolve(filename)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return string(content), nil
}

// Find resolves a user-supplied pattern to note filenames. An exact filename
// match wins; otherwise every note whose filename contains the pattern is
// returned, in directory-listing order.
func (r *Repository) Find(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, ErrEmptyQuery
	}

	if !strings.ContainsRune(pattern, os.PathSeparator) {
		if _, err := os.Stat(filepath.Join(r.dir, pattern)); err == nil {
			return []string{pattern}, nil
		}
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read notes directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), note.Extension) {
			continue
		}
		if strings.Contains(entry.Name(), pattern) {
			matches = append(matches, entry.Name())
		}
	}

	return matches, nil
}

// Stats aggregates repository-wide statistics.
type Stats struct {
	Count     int
	TotalSize int64
	Oldest    *Summary
	Newest    *Summary
	TagCounts map[string]int
}

// Stats scans every note and reports totals, the oldest and newest notes by
// modification time, and per-tag note counts.
func (r *Repository) Stats() (*Stats, error) {
	summaries, err := r.List()
	if err != nil {
		return nil, err
	}

	stats := &Stats{TagCounts: make(map[string]int)}
	for i := range summaries {
		s := &summaries[i]
		stats.Count++
		stats.TotalSize += s.Size
		if stats.Oldest == nil || s.ModifiedAt.Before(stats.Oldest.ModifiedAt) {
			stats.Oldest = s
		}
		if stats.Newest == nil || s.ModifiedAt.After(stats.Newest.ModifiedAt) {
			stats.Newest = s
		}
		for _, tag := range s.Tags {
			stats.TagCounts[tag]++
		}
	}

	return stats, nil
}

// resolve maps a filename to its on-disk path, verifying existence. Filenames
// carrying path separators never resolve.
func (r *Repository) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", ErrNotFound
	}
	path := filepath.Join(r.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat note: %w", err)
	}
	return path, nil
}
