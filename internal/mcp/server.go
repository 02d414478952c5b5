// Package mcp exposes note repository operations as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/md-notes/mdnotes/internal/repository"
)

// Server wraps the MCP server with note-specific functionality
type Server struct {
	server *mcp.Server
	repo   *repository.Repository
}

// NewServer creates a new MCP server instance backed by the given repository.
func NewServer(repo *repository.Repository) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "mdnotes",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server: mcpServer,
		repo:   repo,
	}

	s.registerTools()

	return s
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "note_new",
		Description: "Create a new markdown note; #tag tokens in the title become tags",
	}, s.handleNew)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "note_list",
		Description: "List all notes with titles, tags, and modification times",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "note_search",
		Description: "Search notes by content (case-insensitive substring match)",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "note_get",
		Description: "Get the full content of a note by filename",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "note_delete",
		Description: "Delete a note by filename",
	}, s.handleDelete)
}

// Input/Output types for each tool

type NewInput struct {
	Title   string `json:"title" jsonschema:"required,description=Note title; tokens starting with # become tags"`
	Content string `json:"content,omitempty" jsonschema:"description=Optional initial content for the Notes section"`
}

type NewOutput struct {
	Filename string   `json:"filename"`
	Path     string   `json:"path"`
	Tags     []string `json:"tags,omitempty"`
}

type ListInput struct{}

type ListOutput struct {
	Notes []ListEntry `json:"notes"`
}

type ListEntry struct {
	Filename   string   `json:"filename"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags,omitempty"`
	ModifiedAt string   `json:"modifiedAt"`
}

type SearchInput struct {
	Query   string `json:"query" jsonschema:"required,description=Term to search for"`
	TagOnly bool   `json:"tagOnly,omitempty" jsonschema:"description=Match only against note tags"`
}

type SearchOutput struct {
	Filenames []string `json:"filenames"`
}

type GetInput struct {
	Filename string `json:"filename" jsonschema:"required,description=Note filename"`
}

type GetOutput struct {
	Content string `json:"content"`
}

type DeleteInput struct {
	Filename string `json:"filename" jsonschema:"required,description=Note filename to delete"`
}

type DeleteOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleNew(ctx context.Context, req *mcp.CallToolRequest, input NewInput) (*mcp.CallToolResult, NewOutput, error) {
	created, err := s.repo.Create(input.Title, input.Content)
	if err != nil {
		return nil, NewOutput{}, fmt.Errorf("failed to create note: %w", err)
	}

	return nil, NewOutput{
		Filename: created.Filename,
		Path:     created.Path,
		Tags:     created.Tags,
	}, nil
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	summaries, err := s.repo.List()
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to list notes: %w", err)
	}

	output := ListOutput{Notes: make([]ListEntry, 0, len(summaries))}
	for _, summary := range summaries {
		output.Notes = append(output.Notes, ListEntry{
			Filename:   summary.Filename,
			Title:      summary.Title,
			Tags:       summary.Tags,
			ModifiedAt: summary.ModifiedAt.Format(time.RFC3339),
		})
	}

	return nil, output, nil
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	var (
		matches []string
		err     error
	)
	if input.TagOnly {
		matches, err = s.repo.SearchTags(input.Query)
	} else {
		matches, err = s.repo.Search(input.Query)
	}
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("failed to search notes: %w", err)
	}

	return nil, SearchOutput{Filenames: matches}, nil
}

func (s *Server) handleGet(ctx context.Context, req *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, GetOutput, error) {
	content, err := s.repo.Read(input.Filename)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, GetOutput{}, fmt.Errorf("note not found: %s", input.Filename)
		}
		return nil, GetOutput{}, fmt.Errorf("failed to read note: %w", err)
	}

	return nil, GetOutput{Content: content}, nil
}

func (s *Server) handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if err := s.repo.Delete(input.Filename); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, DeleteOutput{}, fmt.Errorf("note not found: %s", input.Filename)
		}
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete note: %w", err)
	}

	return nil, DeleteOutput{Message: fmt.Sprintf("Deleted %s", input.Filename)}, nil
}
