// Package mcp exposes the piece catalog and the orientation enumerator as
// Model Context Protocol tools over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arbaregni/pentominoes"
	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

// PieceSummary describes one catalog piece.
type PieceSummary struct {
	Name         string `json:"name" jsonschema_description:"Piece name"`
	Cells        int    `json:"cells" jsonschema_description:"Number of filled cells"`
	Orientations int    `json:"orientations" jsonschema_description:"Number of geometrically distinct orientations"`
}

// PiecesResult is the structured result of the list_pieces tool.
type PiecesResult struct {
	Pieces []PieceSummary `json:"pieces" jsonschema_description:"All pieces in the catalog"`
}

// OrientationInfo is one distinct orientation of a shape.
type OrientationInfo struct {
	Rows  []string `json:"rows" jsonschema_description:"Layout rows, 'X' for filled cells and '.' for empty ones"`
	Cells string   `json:"cells" jsonschema_description:"Canonical cell list in (x,y) form"`
}

// OrientationsResult is the structured result of the orientation tools.
type OrientationsResult struct {
	Label        string            `json:"label" jsonschema_description:"Piece name, or 'shape' for ad-hoc input"`
	Count        int               `json:"count" jsonschema_description:"Number of distinct orientations"`
	Orientations []OrientationInfo `json:"orientations" jsonschema_description:"Every distinct orientation"`
}

// Catalog defines the piece lookups the MCP server needs.
type Catalog interface {
	Pieces() []pentominoes.Piece
	Get(name string) (pentominoes.Piece, error)
}

// Server wraps the catalog and exposes it as an MCP Server.
type Server struct {
	catalog   Catalog
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(cat Catalog) *Server {
	s := &Server{
		catalog:   cat,
		mcpServer: server.NewMCPServer("pentominoes-mcp", strings.TrimSpace(pentominoes.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_pieces
	listTool := mcp.NewTool("list_pieces",
		mcp.WithDescription("List every piece in the catalog with its cell and orientation counts."),
		mcp.WithOutputSchema[PiecesResult](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListPieces))

	// TOOL: piece_orientations
	pieceTool := mcp.NewTool("piece_orientations",
		mcp.WithDescription("Enumerate the geometrically distinct orientations of a catalog piece."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Piece name, e.g. 'F'")),
		mcp.WithOutputSchema[OrientationsResult](),
	)
	s.mcpServer.AddTool(pieceTool, mcp.NewStructuredToolHandler(s.handlePieceOrientations))

	// TOOL: shape_orientations
	shapeTool := mcp.NewTool("shape_orientations",
		mcp.WithDescription("Enumerate the distinct orientations of an ad-hoc shape. Rows use 'X' for filled cells and '.' for empty ones, one row per line."),
		mcp.WithString("rows", mcp.Required(), mcp.Description("Shape layout, rows separated by newlines")),
		mcp.WithOutputSchema[OrientationsResult](),
	)
	s.mcpServer.AddTool(shapeTool, mcp.NewStructuredToolHandler(s.handleShapeOrientations))
}

// Handler methods for structured tools

func (s *Server) handleListPieces(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PiecesResult, error) {
	pieces := s.catalog.Pieces()
	res := PiecesResult{Pieces: make([]PieceSummary, len(pieces))}
	for i, p := range pieces {
		res.Pieces[i] = PieceSummary{
			Name:         p.Name(),
			Cells:        p.Shape().Len(),
			Orientations: len(p.Orientations()),
		}
	}
	return res, nil
}

func (s *Server) handlePieceOrientations(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (OrientationsResult, error) {
	name, _ := args["name"].(string)
	piece, err := s.catalog.Get(name)
	if err != nil {
		return OrientationsResult{}, fmt.Errorf("lookup failed: %w", err)
	}
	return orientationsResult(piece.Name(), piece.Orientations()), nil
}

func (s *Server) handleShapeOrientations(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (OrientationsResult, error) {
	rowsArg, _ := args["rows"].(string)
	rows := strings.Split(rowsArg, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSpace(row)
	}

	shape, err := grid.Parse(rows...)
	if err != nil {
		return OrientationsResult{}, fmt.Errorf("invalid shape: %w", err)
	}
	return orientationsResult("shape", symmetry.Orientations(shape)), nil
}

func orientationsResult(label string, orientations []grid.Shape) OrientationsResult {
	res := OrientationsResult{
		Label:        label,
		Count:        len(orientations),
		Orientations: make([]OrientationInfo, len(orientations)),
	}
	for i, o := range orientations {
		res.Orientations[i] = OrientationInfo{Rows: o.Rows(), Cells: o.String()}
	}
	return res
}

func (s *Server) registerResources() {
	// EXPOSE: pentominoes://catalog
	s.mcpServer.AddResource(mcp.NewResource("pentominoes://catalog", "Piece Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		res, err := s.handleListPieces(ctx, mcp.CallToolRequest{}, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list pieces: %w", err)
		}
		jsonBytes, _ := json.Marshal(res)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "pentominoes://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
