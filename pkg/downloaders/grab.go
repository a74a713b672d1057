package downloaders

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/cavaliergopher/grab/v3"
)

func GetGrabClient() *grab.Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		Proxy:           http.ProxyFromEnvironment,
	}
	return &grab.Client{
		UserAgent: "ggn-console-downloader",
		HTTPClient: &http.Client{
			Transport: tr,
		},
	}
}

// Grab fetches the authenticated download URL with grab. It waits on the
// gazelle client's limiter first so the transfer counts against the same
// 5-per-10s budget.
type Grab struct {
	client TorrentClient
	grab   *grab.Client
}

func NewGrab(client TorrentClient) *Grab {
	return &Grab{
		client: client,
		grab:   GetGrabClient(),
	}
}

func (g *Grab) Save(ctx context.Context, torrentID, dest string) (string, error) {
	url, err := g.client.DownloadURL(ctx, torrentID)
	if err != nil {
		return "", err
	}
	if err := g.client.WaitLimiter(ctx); err != nil {
		return "", err
	}

	req, err := grab.NewRequest(dest, url)
	if err != nil {
		return "", err
	}
	req = req.WithContext(ctx)
	resp := g.grab.Do(req)
	if err := resp.Err(); err != nil {
		return "", err
	}
	return url, nil
}
