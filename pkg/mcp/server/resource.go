package server

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	resourceScheme   = "weather://"
	resourceMIMEType = "application/json"
)

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ResourceURI returns the resource URI for a city key
func ResourceURI(key string) string {
	return resourceScheme + key
}

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Server) registerResources() {
	for _, record := range s.store.Records() {
		s.AddResource(&mcp.Resource{
			URI:         ResourceURI(record.Key),
			Name:        "Weather for " + record.City,
			Description: "Current weather conditions in " + record.City,
			MIMEType:    resourceMIMEType,
		}, s.readResource)
	}
}

func (s *Server) readResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	key, ok := strings.CutPrefix(uri, resourceScheme)
	if !ok {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	snapshot, err := s.store.Snapshot(key, s.now())
	if err != nil {
		s.log.Debug("read_resource", zap.String("uri", uri), zap.Error(err))
		return nil, mcp.ResourceNotFoundError(uri)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, weather.ErrInternalServerError.Withf("marshal %q: %v", uri, err)
	}
	s.log.Debug("read_resource", zap.String("uri", uri), zap.String("city", snapshot.City))

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: resourceMIMEType, Text: string(data)},
		},
	}, nil
}
