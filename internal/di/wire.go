//go:build wireinject
// +build wireinject

package di

import (
	"StockSense/pkg/config"
	"StockSense/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideBytesCache,

		// Upstream clients
		ProvideBarProvider,
		ProvideNewsSources,
		ProvideScorer,
		ProvideSummarizer,

		// Use case
		ProvideAnalyzer,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
