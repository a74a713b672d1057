package gazelle

import (
	"context"
	"fmt"
	"io"
	"os"
)

// downloadParams builds the torrents.php query for one torrent, pulling the
// auth and pass keys from the cached session user (fetched once per client).
func (c *Client) downloadParams(ctx context.Context, torrentID string) (Params, error) {
	user, err := c.sessionUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching session user: %w", err)
	}
	p := Params{}
	p.Set("id", torrentID)
	p.Set("authkey", user.AuthKey)
	p.Set("torrent_pass", user.PassKey)
	return p, nil
}

// DownloadURL returns the authenticated download URL for a torrent without
// transferring the file.
func (c *Client) DownloadURL(ctx context.Context, torrentID string) (string, error) {
	params, err := c.downloadParams(ctx, torrentID)
	if err != nil {
		return "", err
	}
	res, err := c.call(ctx, "download", params, callOptions{overrideURL: c.torrentsURL, dry: true})
	if err != nil {
		return "", err
	}
	return res.Endpoint, nil
}

// DownloadTorrent downloads a torrent file to dest. When dry is set, no
// file transfer happens and only the would-be URL is returned. A failed
// write may leave a truncated file behind; callers must treat any error as
// a possibly-partial dest.
func (c *Client) DownloadTorrent(ctx context.Context, torrentID, dest string, dry bool) (string, error) {
	if !dry && dest == "" {
		return "", ErrMissingDestination
	}

	params, err := c.downloadParams(ctx, torrentID)
	if err != nil {
		return "", err
	}

	res, err := c.call(ctx, "download", params, callOptions{overrideURL: c.torrentsURL, dry: dry})
	if err != nil {
		return "", err
	}
	if dry {
		return res.Endpoint, nil
	}
	if res.Response == nil {
		// JSON with status success on the download path means the site did
		// not serve a file.
		return "", &APIError{Action: "download", Body: string(res.Body)}
	}
	defer res.Response.Body.Close()

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err := io.Copy(f, res.Response.Body); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", dest, err)
	}
	c.logger.Debug().Msgf("Torrent downloaded to %s", dest)
	return res.Endpoint, nil
}
