// Package scanner walks torrent search pages per category and builds the
// download plan: one winning torrent per group.
package scanner

import (
	"context"
	"fmt"

	"github.com/racoon-plane-thief/ggn-console-downloader/pkg/gazelle"
	"github.com/rs/zerolog"
)

// TorrentTypePrimary marks a primary game torrent; other types (and any
// GameDOX sub-type) are bonus content and never selected.
const TorrentTypePrimary = "Torrent"

// SearchClient is the slice of the gazelle client the scanner needs.
type SearchClient interface {
	SearchTorrents(ctx context.Context, opts gazelle.SearchOptions) ([]gazelle.Group, error)
}

// Candidate is the torrent chosen for a group so far.
type Candidate struct {
	TorrentID    string
	ReleaseTitle string
	Seeders      int
}

// Plan maps group ID to its surviving candidate.
type Plan map[int]Candidate

type Scanner struct {
	client   SearchClient
	orderBy  string
	orderWay string
	logger   zerolog.Logger
}

func New(client SearchClient, orderBy, orderWay string, logger zerolog.Logger) *Scanner {
	return &Scanner{
		client:   client,
		orderBy:  orderBy,
		orderWay: orderWay,
		logger:   logger,
	}
}

// Scan runs every category to completion, sequentially, and returns the
// accumulated plan. A page fetch failure aborts the run.
func (s *Scanner) Scan(ctx context.Context, categories []string) (Plan, error) {
	plan := Plan{}
	for _, category := range categories {
		s.logger.Info().Msgf("Searching for torrents for %s starting at page 1", category)
		if err := s.scanCategory(ctx, category, plan); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// scanCategory pages through one category's filled groups until a page
// comes back empty.
func (s *Scanner) scanCategory(ctx context.Context, category string, plan Plan) error {
	for page := 1; ; page++ {
		groups, err := s.client.SearchTorrents(ctx, gazelle.SearchOptions{
			ArtistName:  category,
			OrderBy:     s.orderBy,
			OrderWay:    s.orderWay,
			EmptyGroups: "filled",
			Page:        page,
		})
		if err != nil {
			return fmt.Errorf("searching %s page %d: %w", category, page, err)
		}
		if len(groups) == 0 {
			return nil
		}
		for _, group := range groups {
			s.processGroup(group, plan)
		}
		s.logger.Info().Msgf("Found %d torrents so far, next page is %d", len(plan), page+1)
	}
}

// processGroup applies the per-entry rules in encounter order. A snatched
// entry voids the group's current candidate and processing moves on to the
// next entry; it does not look back for a replacement.
func (s *Scanner) processGroup(group gazelle.Group, plan Plan) {
	for _, t := range group.Torrents {
		if t.TorrentType != TorrentTypePrimary {
			continue
		}
		if t.GameDOXType != "" {
			continue
		}
		if t.IsSnatched {
			s.logger.Info().Msgf("Group already snatched (%s), skipping", t.ReleaseTitle)
			delete(plan, t.GroupID)
			continue
		}
		// Strictly more seeders replaces; first seen wins ties.
		if current, ok := plan[t.GroupID]; ok && current.Seeders >= t.Seeders {
			continue
		}
		plan[t.GroupID] = Candidate{
			TorrentID:    t.ID,
			ReleaseTitle: t.ReleaseTitle,
			Seeders:      t.Seeders,
		}
	}
}
