// Package mcpserver binds the tool registry and the snapshot resource to an
// MCP server spoken over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/preston-bernstein/travel-reservations-service/internal/app/reservations"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
	"github.com/preston-bernstein/travel-reservations-service/internal/tools"
)

const (
	ServerName    = "travel-reservations-server"
	ServerVersion = "0.1.0"

	DataResourceURI  = "file://data.json"
	dataResourceName = "Hotel Data"
	dataResourceDesc = "Current hotel rooms and reservations data"
	mimeJSON         = "application/json"
)

// New registers every tool in reg and the data resource on a fresh MCP server.
func New(reg *tools.Registry, svc *reservations.Service, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	for _, t := range reg.Tools() {
		name := t.Name
		s.AddTool(toMCPTool(t), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ctx = logging.WithLogger(ctx, logger)
			return mcp.NewToolResultText(reg.Call(ctx, name, req.GetArguments())), nil
		})
	}

	s.AddResource(
		mcp.NewResource(DataResourceURI, dataResourceName,
			mcp.WithResourceDescription(dataResourceDesc),
			mcp.WithMIMEType(mimeJSON),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return nil, err
			}
			body, err := json.MarshalIndent(snap.Normalize(), "", "  ")
			if err != nil {
				return nil, fmt.Errorf("encode snapshot: %w", err)
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{URI: DataResourceURI, MIMEType: mimeJSON, Text: string(body)},
			}, nil
		},
	)
	return s
}

func toMCPTool(t tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		switch p.Type {
		case tools.TypeNumber:
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(t.Name, opts...)
}

// Serve speaks the protocol over in/out until ctx is cancelled or in closes.
// Protocol errors go to logger; out must carry nothing but protocol frames.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s)
	if logger != nil {
		stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	} else {
		stdio.SetErrorLogger(log.New(io.Discard, "", 0))
	}
	logging.Info(logger, "mcp server listening on stdio", "server", ServerName)
	return stdio.Listen(ctx, in, out)
}
