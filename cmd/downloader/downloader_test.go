package downloader

import (
	"context"
	"errors"
	"testing"

	"github.com/racoon-plane-thief/ggn-console-downloader/pkg/scanner"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeSaver records every save and fails for the configured torrent IDs.
type fakeSaver struct {
	saved   []string
	failFor map[string]error
}

func (f *fakeSaver) Save(ctx context.Context, torrentID, dest string) (string, error) {
	f.saved = append(f.saved, torrentID)
	if err, ok := f.failFor[torrentID]; ok {
		return "", err
	}
	return "http://example/torrents.php?id=" + torrentID, nil
}

type fakeResolver struct {
	resolved  []string
	downloads []string
}

func (f *fakeResolver) DownloadURL(ctx context.Context, torrentID string) (string, error) {
	f.resolved = append(f.resolved, torrentID)
	return "http://example/torrents.php?id=" + torrentID, nil
}

func (f *fakeResolver) DownloadTorrent(ctx context.Context, torrentID, dest string, dry bool) (string, error) {
	f.downloads = append(f.downloads, torrentID)
	return "", nil
}

func (f *fakeResolver) WaitLimiter(ctx context.Context) error { return nil }

func testPlan() scanner.Plan {
	return scanner.Plan{
		10: {TorrentID: "100", ReleaseTitle: "Pitfall (USA)", Seeders: 5},
		11: {TorrentID: "110", ReleaseTitle: "Adventure (USA)", Seeders: 3},
		12: {TorrentID: "120", ReleaseTitle: "Combat (USA)", Seeders: 1},
	}
}

func TestExecutePlan_FailureDoesNotAbortRemainingItems(t *testing.T) {
	saver := &fakeSaver{failFor: map[string]error{"110": errors.New("boom")}}

	executePlan(context.Background(), testPlan(), &fakeResolver{}, saver, t.TempDir(), false, zerolog.Nop())

	// Every item is attempted in sorted group-ID order, the middle failure
	// included.
	require.Equal(t, []string{"100", "110", "120"}, saver.saved)
}

func TestExecutePlan_AllItemsFailingStillAttemptsAll(t *testing.T) {
	saver := &fakeSaver{failFor: map[string]error{
		"100": errors.New("boom"),
		"110": errors.New("boom"),
		"120": errors.New("boom"),
	}}

	executePlan(context.Background(), testPlan(), &fakeResolver{}, saver, t.TempDir(), false, zerolog.Nop())

	require.Len(t, saver.saved, 3)
}

func TestExecutePlan_DryRunResolvesURLsOnly(t *testing.T) {
	saver := &fakeSaver{}
	resolver := &fakeResolver{}

	executePlan(context.Background(), testPlan(), resolver, saver, t.TempDir(), true, zerolog.Nop())

	require.Equal(t, []string{"100", "110", "120"}, resolver.resolved)
	require.Empty(t, saver.saved)
	require.Empty(t, resolver.downloads)
}
