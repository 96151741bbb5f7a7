package cmd

import (
	"fmt"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/filesystem"
	"github.com/nexent-labs/modelctl/internal/history"
	"github.com/nexent-labs/modelctl/internal/logger"
	"github.com/nexent-labs/modelctl/internal/registry"
	"github.com/nexent-labs/modelctl/internal/theme"
)

// newRegistryService wires a registry client and batch service from the
// container's settings. The returned closer releases the history store.
func newRegistryService(c *cli.Container, parallelism int) (*registry.Service, func()) {
	retryCfg := registry.DefaultRetryConfig()
	retryCfg.MaxRetries = c.Settings.MaxRetries

	client := registry.NewClient(c.Settings.BaseURL,
		registry.WithToken(c.Settings.Token),
		registry.WithTimeout(c.Settings.Timeout),
		registry.WithRateLimit(c.Settings.RateLimitRPS),
		registry.WithRetry(retryCfg),
		registry.WithClientLogger(c.Logger),
	)

	if parallelism < 1 {
		parallelism = c.Settings.Parallelism
	}

	opts := []registry.ServiceOption{
		registry.WithServiceLogger(c.Logger),
		registry.WithParallelism(parallelism),
	}

	// Run history is best-effort; a broken local store never blocks the
	// remote operation.
	store, err := history.Open(c.Paths[filesystem.HistoryDB])
	if err != nil {
		c.Logger.WithFields(map[string]interface{}{
			logger.ErrorKey: err,
			"path":          c.Paths[filesystem.HistoryDB],
		}).Warn("run history unavailable", nil)
		store = nil
	}
	if store != nil {
		opts = append(opts, registry.WithRecorder(store))
	}

	closer := func() {
		if store != nil {
			store.Close()
		}
	}

	return registry.NewService(client, opts...), closer
}

// printSummary renders per-record outcomes and the batch totals. It returns
// a non-nil error when any record failed so the process exits non-zero.
func printSummary(t theme.Theme, operation string, summary registry.Summary) error {
	for _, r := range summary.Results {
		if r.OK {
			t.Success().Println(fmt.Sprintf("✅ %s", r.Model))
		} else {
			t.Error().Println(fmt.Sprintf("❌ %s: %v", r.Model, r.Err))
		}
	}

	if len(summary.Results) == 0 {
		t.Info().Println("Nothing to do.")
		return nil
	}

	t.Info().Println(fmt.Sprintf("\n📊 %s finished: %d succeeded, %d failed",
		operation, summary.Succeeded(), summary.Failed()))

	if !summary.OK() {
		return fmt.Errorf("%s failed for %d of %d models", operation, summary.Failed(), len(summary.Results))
	}
	return nil
}

// maskSecret hides all but the edges of a secret for display purposes.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}
