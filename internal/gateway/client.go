// README: MCP client for the tool gateway (discovery, invocation, degraded results).
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Client talks to an MCP gateway over SSE or streamable HTTP. The session is
// dialed lazily on first use and redialed after transport failures. Safe for
// concurrent use.
type Client struct {
	endpoint string
	timeout  time.Duration
	cache    *Cache
	logger   *slog.Logger

	mu      sync.Mutex
	session *mcp.ClientSession
	known   map[string]ToolDescriptor
}

// NewClient builds a gateway client. cache may be nil (no result reuse).
func NewClient(endpoint string, timeout time.Duration, cache *Cache, logger *slog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		cache:    cache,
		logger:   logger,
		known:    map[string]ToolDescriptor{},
	}
}

func (c *Client) transport() mcp.Transport {
	// Gateways that expose /sse speak the older SSE transport; everything
	// else is assumed to be streamable HTTP.
	if strings.HasSuffix(c.endpoint, "/sse") {
		return &mcp.SSEClientTransport{Endpoint: c.endpoint}
	}
	return &mcp.StreamableClientTransport{Endpoint: c.endpoint}
}

// ensureSession dials the gateway if no live session exists. Callers hold c.mu.
func (c *Client) ensureSession() error {
	if c.session != nil {
		return nil
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "trailhead", Version: "1.0.0"}, nil)
	// The session outlives the dialing request, so it must not inherit the
	// request context.
	session, err := client.Connect(context.Background(), c.transport(), nil)
	if err != nil {
		return fmt.Errorf("connect gateway %s: %w", c.endpoint, err)
	}
	c.session = session
	c.logger.Info("gateway session established", "endpoint", c.endpoint)
	return nil
}

// dropSession discards a broken session so the next call redials. Callers hold c.mu.
func (c *Client) dropSession() {
	if c.session != nil {
		_ = c.session.Close()
		c.session = nil
	}
}

// Tools discovers the gateway's capabilities. On failure it returns an empty
// set and the error; the tool set is also remembered for argument validation.
func (c *Client) Tools(ctx context.Context) ([]ToolDescriptor, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureSession(); err != nil {
		return nil, err
	}

	var (
		cursor string
		out    []ToolDescriptor
	)
	for {
		params := &mcp.ListToolsParams{}
		if cursor != "" {
			params.Cursor = cursor
		}
		res, err := c.session.ListTools(ctx, params)
		if err != nil {
			c.dropSession()
			return nil, fmt.Errorf("list tools: %w", err)
		}
		for _, t := range res.Tools {
			d := ToolDescriptor{Name: t.Name, Description: t.Description}
			if t.InputSchema != nil {
				if raw, err := json.Marshal(t.InputSchema); err == nil {
					d.Schema = raw
				}
			}
			out = append(out, d)
			c.known[d.Name] = d
		}
		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return out, nil
}

// Invoke calls one tool exactly once. Unknown tools and missing required
// arguments fail locally without touching the network; every other failure is
// converted into a degraded result. The context timeout bounds the call.
func (c *Client) Invoke(ctx context.Context, name string, args map[string]any) ToolResult {
	desc, err := c.descriptor(ctx, name)
	if err != nil {
		return failedResult(name, args, fmt.Sprintf("tool gateway unavailable: %v", err))
	}
	if err := validateArgs(desc, args); err != nil {
		return failedResult(name, args, err.Error())
	}

	if cached, ok := c.cache.Get(ctx, name, args); ok {
		return cached
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.mu.Lock()
	if err := c.ensureSession(); err != nil {
		c.mu.Unlock()
		return failedResult(name, args, fmt.Sprintf("tool gateway unavailable: %v", err))
	}
	session := c.session
	c.mu.Unlock()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		c.mu.Lock()
		c.dropSession()
		c.mu.Unlock()
		c.logger.Warn("tool call failed", "tool", name, "err", err)
		return failedResult(name, args, fmt.Sprintf("tool call failed: %v", err))
	}

	output := formatOutput(extractText(res.Content))
	if res.IsError {
		return failedResult(name, args, firstNonEmpty(output, "tool reported an error"))
	}

	result := ToolResult{ToolName: name, Arguments: stringifyArgs(args), Output: output, Succeeded: true}
	c.cache.Put(ctx, name, args, result)
	return result
}

// descriptor resolves a tool by name, running discovery if it has not been
// seen yet. Invoking a tool that was never discovered is a caller bug per the
// contract, but a stale cache after gateway restart is not, so one refresh is
// attempted before giving up.
func (c *Client) descriptor(ctx context.Context, name string) (ToolDescriptor, error) {
	c.mu.Lock()
	d, ok := c.known[name]
	c.mu.Unlock()
	if ok {
		return d, nil
	}

	if _, err := c.Tools(ctx); err != nil {
		return ToolDescriptor{}, err
	}

	c.mu.Lock()
	d, ok = c.known[name]
	c.mu.Unlock()
	if !ok {
		return ToolDescriptor{}, fmt.Errorf("unknown tool %q", name)
	}
	return d, nil
}

// Close terminates the gateway session if one is open.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

func stringifyArgs(args map[string]any) map[string]string {
	if len(args) == 0 {
		return nil
	}
	out := make(map[string]string, len(args))
	for k, v := range args {
		out[k] = fmt.Sprint(v)
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
