package gazelle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParams_OmitAbsentValues(t *testing.T) {
	p := Params{}
	p.Set("a", "value")
	p.Set("b", "")
	p.SetInt("c", 3)
	p.SetInt("d", 0)
	p.SetBool("e", Bool(true))
	p.SetBool("f", Bool(false))
	p.SetBool("g", nil)
	p.SetIntPtr("h", Int(0))
	p.SetIntPtr("i", nil)

	require.Equal(t, Params{
		"a": "value",
		"c": "3",
		"e": "1",
		"f": "0",
		"h": "0",
	}, p)
}

func TestSearchOptions_Params(t *testing.T) {
	opts := SearchOptions{
		ArtistName:  "Atari 2600",
		EmptyGroups: "filled",
		OrderBy:     "groupname",
		OrderWay:    "asc",
		HideDead:    Bool(true),
		FreeTorrent: Int(0),
		FilterCats:  []int{1, 4},
		TagList:     []string{"rpg", "platformer"},
		Page:        3,
	}
	p, err := opts.params("torrents")
	require.NoError(t, err)

	require.Equal(t, "torrents", p["search_type"])
	require.Equal(t, "Atari 2600", p["artistname"])
	require.Equal(t, "filled", p["emptygroups"])
	require.Equal(t, "1", p["hide_dead"])
	require.Equal(t, "0", p["freetorrent"])
	require.Equal(t, "1", p["filtercat[1]"])
	require.Equal(t, "1", p["filtercat[4]"])
	require.Equal(t, "rpg,platformer", p["taglist"])
	require.Equal(t, "3", p["page"])

	// Unset fields never appear, not even as empty strings.
	for _, key := range []string{"searchstr", "year", "scene", "checked", "dupable"} {
		_, ok := p[key]
		require.False(t, ok, "key %s should be absent", key)
	}
}

func TestSearchOptions_PageDefaultsToOne(t *testing.T) {
	p, err := SearchOptions{}.params("torrents")
	require.NoError(t, err)
	require.Equal(t, "1", p["page"])
}
