// Package tools provides MCP tool handlers and registration.
package tools

import (
	"github.com/partstack/digikey-mcp/pkg/digikey"
	"go.uber.org/zap"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Client digikey.API
	Logger *zap.Logger
}
