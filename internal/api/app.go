package api

import (
	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/auth"
	"github.com/harryhartz/bimoodtracker/internal/config"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

// App carries the dependencies handlers need. cmd/server wires the real
// thing; tests wire a memory-backed one.
type App interface {
	Logger() internal.Logger
	Config() *config.Config
	Store() storage.Store
	Tokens() *auth.TokenManager
}
