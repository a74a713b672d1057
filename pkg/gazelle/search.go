package gazelle

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// SearchOptions covers the torrent/request search filters. Zero values are
// omitted from the request; tri-state flags use *bool/*int (see Bool, Int).
type SearchOptions struct {
	SearchStr     string
	GroupName     string
	ArtistName    string // single platform label; cannot be combined with ArtistCheck
	ArtistCheck   string
	Year          string // year or range, e.g. "2000", "1999-", "1990-1995"
	RemasterTitle string
	RemasterYear  string
	ReleaseTitle  string
	ReleaseGroup  string
	FileList      string
	SizeSmall     int // minimum size in MB
	SizeLarge     int // maximum size in MB
	UserRating    int
	MetaRating    int
	IGNRating     int
	GSRating      int
	Encoding      string
	AudioFormat   string
	Region        string
	Language      string
	Rating        string
	RatingStrict  *bool
	Miscellaneous string
	GameDox       string
	Scene         *bool
	Dupable       *int
	FreeTorrent   *int
	Checked       *bool
	TagList       []string
	TagsType      *bool
	HideDead      *bool
	EmptyGroups   string // "both", "filled" or "empty"
	FilterCats    []int  // category numbers to include (1 games .. 4 OST)
	OrderBy       string
	OrderWay      string
	Page          int
}

func (o SearchOptions) params(searchType string) (Params, error) {
	if o.ArtistName != "" && o.ArtistCheck != "" {
		return nil, fmt.Errorf("only one of artist name or artist check can be provided")
	}
	p := Params{"search_type": searchType}
	p.Set("searchstr", o.SearchStr)
	p.Set("groupname", o.GroupName)
	p.Set("artistname", o.ArtistName)
	p.Set("artistcheck", o.ArtistCheck)
	p.Set("year", o.Year)
	p.Set("remastertitle", o.RemasterTitle)
	p.Set("remasteryear", o.RemasterYear)
	p.Set("releasetitle", o.ReleaseTitle)
	p.Set("releasegroup", o.ReleaseGroup)
	p.Set("filelist", o.FileList)
	p.SetInt("sizesmall", o.SizeSmall)
	p.SetInt("sizelarge", o.SizeLarge)
	p.SetInt("userrating", o.UserRating)
	p.SetInt("metarating", o.MetaRating)
	p.SetInt("ignrating", o.IGNRating)
	p.SetInt("gsrating", o.GSRating)
	p.Set("encoding", o.Encoding)
	p.Set("audioformat", o.AudioFormat)
	p.Set("region", o.Region)
	p.Set("language", o.Language)
	p.Set("rating", o.Rating)
	p.SetBool("rating_strict", o.RatingStrict)
	p.Set("miscellaneous", o.Miscellaneous)
	p.Set("gamedox", o.GameDox)
	p.SetBool("scene", o.Scene)
	p.SetIntPtr("dupable", o.Dupable)
	p.SetIntPtr("freetorrent", o.FreeTorrent)
	p.SetBool("checked", o.Checked)
	p.Set("taglist", strings.Join(o.TagList, ","))
	p.SetBool("tags_type", o.TagsType)
	p.SetBool("hide_dead", o.HideDead)
	p.Set("emptygroups", o.EmptyGroups)
	for _, cat := range o.FilterCats {
		p[fmt.Sprintf("filtercat[%d]", cat)] = "1"
	}
	p.Set("order_by", o.OrderBy)
	p.Set("order_way", o.OrderWay)
	page := o.Page
	if page < 1 {
		page = 1
	}
	p.SetInt("page", page)
	return p, nil
}

// SearchTorrents returns one page of torrent search results. An empty slice
// means the page past the last one was reached.
func (c *Client) SearchTorrents(ctx context.Context, opts SearchOptions) ([]Group, error) {
	p, err := opts.params("torrents")
	if err != nil {
		return nil, err
	}
	raw, err := c.Do(ctx, "search", p)
	if err != nil {
		return nil, err
	}
	return parseSearchResults(raw)
}

// SearchRequests returns one page of request search results.
func (c *Client) SearchRequests(ctx context.Context, opts SearchOptions) (json.RawMessage, error) {
	p, err := opts.params("requests")
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, "search", p)
}

// CollectionSearchOptions covers the collection search filters.
type CollectionSearchOptions struct {
	Search     string
	SearchType string // "c.name", "description" or "tags.Tag"
	Order      string // "Time", "Name", "Torrents" or "Updated"
	Way        string // "Ascending" or "Descending"
	Cats       []int  // collection category numbers to include
}

// SearchCollections searches for collections.
func (c *Client) SearchCollections(ctx context.Context, opts CollectionSearchOptions) (json.RawMessage, error) {
	p := Params{}
	p.Set("search", opts.Search)
	p.Set("search_type", opts.SearchType)
	p.Set("order", opts.Order)
	p.Set("way", opts.Way)
	for _, cat := range opts.Cats {
		p[fmt.Sprintf("cats[%d]", cat)] = "1"
	}
	return c.Do(ctx, "search", p)
}
