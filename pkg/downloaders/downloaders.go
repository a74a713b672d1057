// Package downloaders holds the torrent-file savers. The http saver pulls
// bytes through the gazelle client's raw-response path; the grab saver
// fetches the authenticated URL with cavaliergopher/grab. Both share the
// client's rate-limit budget.
package downloaders

import (
	"context"

	"github.com/racoon-plane-thief/ggn-console-downloader/internal/config"
)

// TorrentClient is the slice of the gazelle client the savers need.
type TorrentClient interface {
	DownloadTorrent(ctx context.Context, torrentID, dest string, dry bool) (string, error)
	DownloadURL(ctx context.Context, torrentID string) (string, error)
	WaitLimiter(ctx context.Context) error
}

// Saver writes one torrent file to dest and returns the URL it came from.
type Saver interface {
	Save(ctx context.Context, torrentID, dest string) (string, error)
}

// New picks a saver by the configured downloader kind.
func New(kind string, client TorrentClient) Saver {
	switch kind {
	case config.DownloaderGrab:
		return NewGrab(client)
	default:
		return NewHTTP(client)
	}
}
