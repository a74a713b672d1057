package gazelle

import (
	"fmt"
	"strconv"

	"github.com/valyala/fastjson"
)

// QuickUser is the current-user record behind the quick_user action. The
// auth and pass keys are what the torrent download endpoint authenticates
// with.
type QuickUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	AuthKey  string `json:"authkey"`
	PassKey  string `json:"passkey"`
}

// Group is one torrent group (a logical release) from a search page.
// Torrents preserves the order the entries appear in the response.
type Group struct {
	ID       string
	Name     string
	Torrents []Torrent
}

// Torrent is a single downloadable entry within a group.
type Torrent struct {
	ID           string
	GroupID      int
	TorrentType  string
	GameDOXType  string
	ReleaseTitle string
	Seeders      int
	Leechers     int
	Size         int64
	IsSnatched   bool
	FreeTorrent  bool
}

// parseSearchResults walks a torrent-search response. The payload is an
// object keyed by group ID, but an empty page comes back as an empty array,
// so this is parsed with fastjson rather than a fixed struct shape.
// Document order of groups and torrents is preserved.
func parseSearchResults(raw []byte) ([]Group, error) {
	v, err := fastjson.ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	switch v.Type() {
	case fastjson.TypeArray:
		// Empty page.
		return nil, nil
	case fastjson.TypeObject:
	default:
		return nil, fmt.Errorf("unexpected search results type %s", v.Type())
	}

	obj := v.GetObject()
	groups := make([]Group, 0, obj.Len())
	obj.Visit(func(key []byte, gv *fastjson.Value) {
		g := Group{
			ID:   string(key),
			Name: stringField(gv, "Name"),
		}
		if torrents := gv.GetObject("Torrents"); torrents != nil {
			torrents.Visit(func(tid []byte, tv *fastjson.Value) {
				g.Torrents = append(g.Torrents, Torrent{
					ID:           string(tid),
					GroupID:      intField(tv, "GroupID"),
					TorrentType:  stringField(tv, "TorrentType"),
					GameDOXType:  stringField(tv, "GameDOXType"),
					ReleaseTitle: stringField(tv, "ReleaseTitle"),
					Seeders:      intField(tv, "Seeders"),
					Leechers:     intField(tv, "Leechers"),
					Size:         int64(intField(tv, "Size")),
					IsSnatched:   boolField(tv, "IsSnatched"),
					FreeTorrent:  boolField(tv, "FreeTorrent"),
				})
			})
		}
		groups = append(groups, g)
	})
	return groups, nil
}

func stringField(v *fastjson.Value, key string) string {
	return string(v.GetStringBytes(key))
}

// intField reads a numeric field that the API sometimes serializes as a
// string.
func intField(v *fastjson.Value, key string) int {
	f := v.Get(key)
	if f == nil {
		return 0
	}
	switch f.Type() {
	case fastjson.TypeNumber:
		return f.GetInt()
	case fastjson.TypeString:
		n, _ := strconv.Atoi(string(f.GetStringBytes()))
		return n
	default:
		return 0
	}
}

// boolField reads a flag that may be a bool, 0/1 number, or "true" string.
func boolField(v *fastjson.Value, key string) bool {
	f := v.Get(key)
	if f == nil {
		return false
	}
	switch f.Type() {
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeNumber:
		return f.GetInt() != 0
	case fastjson.TypeString:
		s := string(f.GetStringBytes())
		return s == "true" || s == "1"
	default:
		return false
	}
}
