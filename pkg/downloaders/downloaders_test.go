package downloaders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/racoon-plane-thief/ggn-console-downloader/internal/config"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	downloads []string
	urls      []string
	waits     int
	baseURL   string
}

func (f *fakeClient) DownloadTorrent(ctx context.Context, torrentID, dest string, dry bool) (string, error) {
	f.downloads = append(f.downloads, torrentID+"->"+dest)
	return "http://example/torrents.php?id=" + torrentID, nil
}

func (f *fakeClient) DownloadURL(ctx context.Context, torrentID string) (string, error) {
	f.urls = append(f.urls, torrentID)
	base := f.baseURL
	if base == "" {
		base = "http://example"
	}
	return base + "/torrents.php?id=" + torrentID, nil
}

func (f *fakeClient) WaitLimiter(ctx context.Context) error {
	f.waits++
	return nil
}

func TestNew_PicksSaverByKind(t *testing.T) {
	client := &fakeClient{}
	require.IsType(t, &HTTP{}, New(config.DownloaderHTTP, client))
	require.IsType(t, &Grab{}, New(config.DownloaderGrab, client))
	require.IsType(t, &HTTP{}, New("", client))
}

func TestHTTP_SaveDelegatesToClient(t *testing.T) {
	client := &fakeClient{}
	saver := NewHTTP(client)

	url, err := saver.Save(context.Background(), "42", "/tmp/x.torrent")
	require.NoError(t, err)
	require.Equal(t, "http://example/torrents.php?id=42", url)
	require.Equal(t, []string{"42->/tmp/x.torrent"}, client.downloads)
}

func TestGrab_SaveWaitsOnLimiterAndWritesBody(t *testing.T) {
	body := "d8:announce18:http://example/annee"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/torrents.php", r.URL.Path)
		require.Equal(t, "42", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/x-bittorrent")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := &fakeClient{baseURL: srv.URL}
	saver := NewGrab(client)
	dest := filepath.Join(t.TempDir(), "x.torrent")

	url, err := saver.Save(context.Background(), "42", dest)
	require.NoError(t, err)
	require.Equal(t, srv.URL+"/torrents.php?id=42", url)
	require.Equal(t, 1, client.waits)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, body, string(got))
}
