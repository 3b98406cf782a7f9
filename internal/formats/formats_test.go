package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHEIF(t *testing.T, enabled bool) {
	t.Helper()
	old := heifEnabled
	heifEnabled = enabled
	t.Cleanup(func() {
		heifEnabled = old
	})
}

func TestAllCompatibleExtensions(t *testing.T) {
	tests := []struct {
		name string
		heif bool
		want int
	}{
		{
			name: "heif disabled",
			heif: false,
			want: 19,
		}, {
			name: "heif enabled",
			heif: true,
			want: 26,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withHEIF(t, tt.heif)

			got := AllCompatibleExtensions()
			require.Len(t, got, tt.want)

			expected := make([]string, 0, tt.want)
			expected = append(expected, GenericExtensions...)
			if tt.heif {
				expected = append(expected, ExtendedExtensions...)
			}
			expected = append(expected, VectorExtensions...)
			assert.Equal(t, expected, got)

			assert.NotContains(t, got, "pdf")
		})
	}
}

func TestAllCompatibleExtensionsReturnsCopy(t *testing.T) {
	withHEIF(t, false)

	got := AllCompatibleExtensions()
	got[0] = "mutated"
	assert.Equal(t, "bmp", GenericExtensions[0])
	assert.Equal(t, "bmp", AllCompatibleExtensions()[0])
}

func TestGroupsAreDisjoint(t *testing.T) {
	seen := make(map[string]string)
	groups := map[string][]string{
		"generic":  GenericExtensions,
		"vector":   VectorExtensions,
		"document": DocumentExtensions,
		"extended": ExtendedExtensions,
	}
	for name, group := range groups {
		for _, ext := range group {
			other, ok := seen[ext]
			assert.Falsef(t, ok, "%s present in both %s and %s", ext, other, name)
			seen[ext] = name
		}
	}
	assert.Len(t, seen, 27)
}

func TestConstants(t *testing.T) {
	assert.EqualValues(t, 201326592, MaxFileSize)
	assert.EqualValues(t, 262144.0, VectorTargetPx)
	assert.EqualValues(t, 992, DocumentRenderWidth)
}
