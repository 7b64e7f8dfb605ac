package server

import (
	"context"
	"time"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	report "github.com/mutablelogic/go-mcp-weather/pkg/report"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// logRequests logs every request received with its duration
func (s *Server) logRequests(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		start := time.Now()
		result, err := next(ctx, method, req)
		fields := []zap.Field{zap.String("method", method), zap.Duration("took", time.Since(start))}
		if err != nil {
			s.log.Warn("request failed", append(fields, zap.Error(err))...)
		} else {
			s.log.Debug("request", fields...)
		}
		return result, err
	}
}

// unknownTools answers calls to unregistered tools with an error text
// instead of a protocol error
func (s *Server) unknownTools(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil && !s.tools[call.Params.Name] {
			s.log.Warn("unknown tool", zap.String("tool", call.Params.Name))
			return textResult(report.UnknownTool(call.Params.Name)), nil
		}
		return next(ctx, method, req)
	}
}
