package gazelle

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// GetMasterGroup returns a master group by id, or by one of its member
// groups.
func (c *Client) GetMasterGroup(ctx context.Context, id, groupID int) (json.RawMessage, error) {
	p := Params{}
	p.SetInt("id", id)
	p.SetInt("groupid", groupID)
	return c.Do(ctx, "master_group", p)
}

// GetTorrentGroup returns a torrent group by id, by the hash of one of its
// torrents, or by its exact name.
func (c *Client) GetTorrentGroup(ctx context.Context, groupID int, hash, name string) (json.RawMessage, error) {
	p := Params{}
	p.SetInt("id", groupID)
	p.Set("hash", strings.ToUpper(hash))
	p.Set("name", name)
	return c.Do(ctx, "torrent_group", p)
}

// GetTorrent returns a torrent's info by id or by info hash; exactly one
// must be provided.
func (c *Client) GetTorrent(ctx context.Context, torrentID int, hash string) (json.RawMessage, error) {
	if torrentID == 0 && hash == "" {
		return nil, fmt.Errorf("id or hash must be provided")
	}
	if torrentID != 0 && hash != "" {
		return nil, fmt.Errorf("only one of id or hash can be provided")
	}
	p := Params{}
	p.SetInt("id", torrentID)
	p.Set("hash", strings.ToUpper(hash))
	return c.Do(ctx, "torrent", p)
}

// GetDeletedTorrentNotifications lists deleted torrent notifications.
// clear is either "all" or a comma-separated list of torrent IDs.
func (c *Client) GetDeletedTorrentNotifications(ctx context.Context, limit, page int, clear string, markUnread bool) (json.RawMessage, error) {
	if page < 1 {
		page = 1
	}
	p := Params{}
	p.SetInt("limit", limit)
	p.SetInt("page", page)
	p.Set("clear", clear)
	p.SetBool("mark_unread", Bool(markUnread))
	return c.Do(ctx, "delete_notifs", p)
}

// GetCollection returns a collection by id.
func (c *Client) GetCollection(ctx context.Context, collectionID int) (json.RawMessage, error) {
	p := Params{}
	p.SetInt("id", collectionID)
	return c.Do(ctx, "collection", p)
}
