// Package mcp adapts the tool handlers to the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/metrics"
	"github.com/kailas-cloud/walmart-mcp/internal/version"
)

// Tool names exposed over the protocol.
const (
	ToolProductSearch  = "walmart_product_search"
	ToolStoreSearch    = "walmart_store_search"
	ToolCategorySearch = "walmart_category_search"
)

// Invoker executes one tool invocation against raw arguments and always
// produces an envelope, success or failure.
type Invoker interface {
	Search(ctx context.Context, args map[string]any) domain.Envelope
}

// Server wires the three catalog tools into an MCP server.
type Server struct {
	mcpServer *mcp.Server
	logger    *zap.Logger
}

// NewServer creates the protocol adapter over the three tool services.
func NewServer(products, stores, categories Invoker, logger *zap.Logger) *Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "walmart-mcp-server",
		Version: version.Version,
	}, &mcp.ServerOptions{HasTools: true})

	s := &Server{mcpServer: srv, logger: logger}

	srv.AddTool(&mcp.Tool{
		Name:        ToolProductSearch,
		Description: "Search for Walmart products by query, with optional filters for price, category, availability, and sorting.",
		InputSchema: productSearchSchema(),
	}, s.invoke(ToolProductSearch, products))

	srv.AddTool(&mcp.Tool{
		Name:        ToolStoreSearch,
		Description: "Search for Walmart stores near a location (zip code, city, or coordinates).",
		InputSchema: storeSearchSchema(),
	}, s.invoke(ToolStoreSearch, stores))

	srv.AddTool(&mcp.Tool{
		Name:        ToolCategorySearch,
		Description: "Browse Walmart product categories or find subcategories of a parent category.",
		InputSchema: categorySearchSchema(),
	}, s.invoke(ToolCategorySearch, categories))

	return s
}

// MCPServer exposes the underlying protocol server, used by transport
// handlers and in-memory test sessions.
func (s *Server) MCPServer() *mcp.Server { return s.mcpServer }

// Handler returns the streamable HTTP handler for the bidirectional endpoint.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, &mcp.StreamableHTTPOptions{})
}

// SSEHandler returns the server-sent events handler for the streaming endpoint.
func (s *Server) SSEHandler() http.Handler {
	return mcp.NewSSEHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// invoke bridges one tool to its service. The protocol never sees a Go
// error from the core: every outcome is a serialized envelope, with IsError
// marking failures.
func (s *Server) invoke(name string, svc Invoker) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		args := map[string]any{}
		if raw := json.RawMessage(req.Params.Arguments); len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				s.logger.Warn("undecodable tool arguments",
					zap.String("tool", name),
					zap.Error(err),
				)
				env := domain.Failure(domain.KindInvalidArguments, "arguments must be a JSON object")
				metrics.ToolInvocationsTotal.WithLabelValues(name, "invalid_arguments").Inc()
				return toResult(env), nil
			}
		}

		env := svc.Search(ctx, args)

		outcome := "success"
		if env.IsFailure() {
			outcome = env.Error.Kind
		}
		metrics.ToolInvocationsTotal.WithLabelValues(name, outcome).Inc()
		metrics.ToolInvocationDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		return toResult(env), nil
	}
}

// toResult serializes an envelope into a text content result.
func toResult(env domain.Envelope) *mcp.CallToolResult {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		// Envelope payloads are plain data; this only fires on a programming error.
		env = domain.Failure(domain.KindInternalError, "failed to encode response")
		b, _ = json.Marshal(env)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
		IsError: env.IsFailure(),
	}
}

func productSearchSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Required. The product search query.",
			},
			"limit": {
				Type:        "integer",
				Description: "Number of results to return (max 50, default 10).",
			},
			"offset": {
				Type:        "integer",
				Description: "Zero-based offset for pagination.",
			},
			"sort": {
				Type:        "string",
				Enum:        []any{"relevance", "price_low", "price_high", "rating", "newest"},
				Description: "Sort order for results.",
			},
			"min_price": {
				Type:        "number",
				Description: "Minimum price filter.",
			},
			"max_price": {
				Type:        "number",
				Description: "Maximum price filter.",
			},
			"in_stock": {
				Type:        "boolean",
				Description: "Filter for in-stock items only.",
			},
			"category_id": {
				Type:        "string",
				Description: "Filter by specific category ID.",
			},
		},
		Required: []string{"query"},
	}
}

func storeSearchSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"location": {
				Type:        "string",
				Description: "Required. Location to search (zip code, city, or coordinates).",
			},
			"radius": {
				Type:        "number",
				Description: "Search radius in miles (default 25).",
			},
			"limit": {
				Type:        "integer",
				Description: "Number of stores to return (max 20, default 10).",
			},
		},
		Required: []string{"location"},
	}
}

func categorySearchSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Optional. Category name to search for.",
			},
			"parent_id": {
				Type:        "string",
				Description: "Optional. Parent category ID to get subcategories.",
			},
			"limit": {
				Type:        "integer",
				Description: "Number of categories to return (max 50, default 20).",
			},
		},
	}
}
