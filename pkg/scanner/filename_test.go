package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "colon and brackets",
			title: "Sonic: The Hedgehog [JP]",
			want:  "Sonic_ The Hedgehog _JP_",
		},
		{
			name:  "slashes and quotes",
			title: `A/B\C"D`,
			want:  "A_B_C_D",
		},
		{
			name:  "wildcards and pipes",
			title: "What?*<>|",
			want:  "What_____",
		},
		{
			name:  "untouched",
			title: "Plain Title (USA) v1.2",
			want:  "Plain Title (USA) v1.2",
		},
		{
			name:  "empty",
			title: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SafeFilename(tt.title))
		})
	}
}
