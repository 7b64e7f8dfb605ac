// Package server serves weather resources, tools and prompts over the
// Model Context Protocol.
package server

import (
	"context"
	"time"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
	version "github.com/mutablelogic/go-mcp-weather/pkg/version"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////
// TYPES

type Server struct {
	*mcp.Server
	store *store.Store
	log   *zap.Logger
	now   func() time.Time
	tools map[string]bool
}

///////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultName         = "weather-server"
	defaultInstructions = "Provides current weather conditions for a fixed set of cities. " +
		"Read weather://<city> resources, or call the weather tools."
)

///////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a server for the cities in the store
func New(s *store.Store, opt ...Opt) (*Server, error) {
	if s == nil {
		return nil, weather.ErrBadParameter.With("store is nil")
	}
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}

	self := &Server{
		Server: mcp.NewServer(version.Implementation(o.name), &mcp.ServerOptions{
			Instructions: o.instructions,
		}),
		store: s,
		log:   o.logger.Named("server"),
		now:   o.clock,
		tools: make(map[string]bool),
	}

	// Register capabilities
	self.registerResources()
	self.registerTools()
	self.registerPrompts()

	// Middleware runs outermost first: log, then intercept unknown tools
	self.AddReceivingMiddleware(self.logRequests, self.unknownTools)

	return self, nil
}

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run serves a single session on the transport until the client
// disconnects or the context is cancelled
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.log.Info("serving", zap.Int("cities", s.store.Len()), zap.Strings("tools", s.ToolNames()))
	if err := s.Server.Run(ctx, transport); err != nil && ctx.Err() == nil {
		return err
	}
	s.log.Info("stopped")
	return nil
}

// ToolNames returns the names of the registered tools
func (s *Server) ToolNames() []string {
	return []string{ToolCurrentWeather, ToolCompareWeather, ToolTemperatureSummary}
}
