package downloaders

import "context"

// HTTP saves torrent files through the gazelle client's download call; the
// exact response body bytes land in dest.
type HTTP struct {
	client TorrentClient
}

func NewHTTP(client TorrentClient) *HTTP {
	return &HTTP{client: client}
}

func (h *HTTP) Save(ctx context.Context, torrentID, dest string) (string, error) {
	return h.client.DownloadTorrent(ctx, torrentID, dest, false)
}
