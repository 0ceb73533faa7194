package impl

import (
	"io"
	"log/slog"

	"rangriti/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cart: &config.CartConfig{
			TaxRatePercent: 10,
		},
		Catalogue: &config.CatalogueConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	}
}
