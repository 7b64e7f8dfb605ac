// Package client is a facade over an MCP client session, which converts
// protocol results into plain values.
package client

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	version "github.com/mutablelogic/go-mcp-weather/pkg/version"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client holds at most one session with a server. Every method returns
// ErrNotConnected until Connect succeeds.
type Client struct {
	client  *mcp.Client
	log     *zap.Logger
	mu      sync.Mutex
	session *mcp.ClientSession
	schemas map[string]*jsonschema.Resolved // tool input schemas, by name
}

var _ weather.ToolCaller = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultName = "weather-client"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a client which is not yet connected
func New(opt ...Opt) (*Client, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Client{
		client: mcp.NewClient(version.Implementation(o.name), nil),
		log:    o.logger.Named("client"),
	}, nil
}

// Connect opens a session on the transport. Returns ErrConflict when
// already connected.
func (c *Client) Connect(ctx context.Context, transport mcp.Transport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return weather.ErrConflict.With("already connected")
	}

	session, err := c.client.Connect(ctx, transport, nil)
	if err != nil {
		return err
	}
	c.session = session
	c.schemas = nil
	if result := session.InitializeResult(); result != nil && result.ServerInfo != nil {
		c.log.Info("connected", zap.String("server", result.ServerInfo.Name), zap.String("version", result.ServerInfo.Version))
	}
	return nil
}

// ConnectCommand spawns a server process and opens a session over its
// standard input and output. The server's standard error is passed through.
func (c *Client) ConnectCommand(ctx context.Context, command string, args ...string) error {
	if command == "" {
		return weather.ErrBadParameter.With("server command is empty")
	}
	cmd := exec.Command(command, args...)
	cmd.Stderr = os.Stderr
	c.log.Debug("spawn", zap.String("command", command), zap.String("args", strings.Join(args, " ")))
	return c.Connect(ctx, &mcp.CommandTransport{Command: cmd})
}

// Close ends the session, and is a no-op when not connected
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	c.schemas = nil
	c.log.Info("disconnected")

	// A spawned server exits when its input is closed
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Connected returns true when a session is open
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// Ping checks the server is responsive
func (c *Client) Ping(ctx context.Context) error {
	session, err := c.get()
	if err != nil {
		return err
	}
	return session.Ping(ctx, nil)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) get() (*mcp.ClientSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil, weather.ErrNotConnected.With("Call Connect first")
	}
	return c.session, nil
}
