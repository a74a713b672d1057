// Package downloader orchestrates one run: scan the configured categories,
// build the plan, then attempt every planned download.
package downloader

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/racoon-plane-thief/ggn-console-downloader/internal/config"
	"github.com/racoon-plane-thief/ggn-console-downloader/internal/logger"
	"github.com/racoon-plane-thief/ggn-console-downloader/internal/request"
	"github.com/racoon-plane-thief/ggn-console-downloader/pkg/downloaders"
	"github.com/racoon-plane-thief/ggn-console-downloader/pkg/gazelle"
	"github.com/racoon-plane-thief/ggn-console-downloader/pkg/scanner"
	"github.com/racoon-plane-thief/ggn-console-downloader/pkg/version"
	"github.com/rs/zerolog"
)

func Start(ctx context.Context) error {
	cfg := config.Get()
	_log := logger.Default().With().Str("run", uuid.NewString()[:8]).Logger()

	_log.Info().Msgf("Version: %s", version.GetInfo().String())
	_log.Debug().Msgf("Config loaded: %s", cfg.JsonFile())

	if cfg.Token == "" {
		return fmt.Errorf("no API token: set --token, token in config.json, or GGN_TOKEN")
	}
	if len(cfg.Categories) == 0 {
		return fmt.Errorf("no categories configured")
	}

	opts := []gazelle.Option{gazelle.WithLogger(logger.New("gazelle"))}
	if cfg.Proxy != "" {
		opts = append(opts, gazelle.WithProxy(cfg.Proxy))
	}
	if rl := request.ParseRateLimit(cfg.RateLimit); rl != nil {
		opts = append(opts, gazelle.WithRateLimiter(rl))
	}
	client := gazelle.New(cfg.Token, opts...)

	_log.Info().Msgf("Searching for torrents in %v", cfg.Categories)
	sc := scanner.New(client, cfg.OrderBy, cfg.OrderWay, logger.New("scanner"))
	plan, err := sc.Scan(ctx, cfg.Categories)
	if err != nil {
		return err
	}
	_log.Info().Msgf("Found %d torrents", len(plan))

	saver := downloaders.New(cfg.Downloader, client)
	executePlan(ctx, plan, client, saver, cfg.WriteLocation, cfg.DryRun, _log)

	_log.Info().Msg("Download complete")
	return nil
}

// executePlan attempts every planned download in sorted group-ID order.
// Per-item failures are logged and never stop the remaining plan. On dry
// runs only the would-be URLs are resolved and logged; nothing is written.
func executePlan(ctx context.Context, plan scanner.Plan, client downloaders.TorrentClient, saver downloaders.Saver, writeLocation string, dryRun bool, _log zerolog.Logger) {
	for _, groupID := range slices.Sorted(maps.Keys(plan)) {
		candidate := plan[groupID]
		dest := filepath.Join(writeLocation, scanner.SafeFilename(candidate.ReleaseTitle)+".torrent")

		if dryRun {
			url, err := client.DownloadURL(ctx, candidate.TorrentID)
			if err != nil {
				_log.Error().Msgf("Error resolving torrent %s: %v", candidate.TorrentID, err)
				continue
			}
			_log.Info().Msgf("[dry] %s -> %s", url, dest)
			continue
		}

		if _, err := saver.Save(ctx, candidate.TorrentID, dest); err != nil {
			_log.Error().Msgf("Error downloading torrent %s: %v", candidate.TorrentID, err)
			continue
		}
		_log.Info().Msgf("Torrent downloaded to %s", dest)
	}
}
