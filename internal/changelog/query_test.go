package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReleases() Releases {
	return Releases{
		{Version: "0.3.0", Date: "2024-03-01", Sections: []Section{{Name: "Added", Items: []string{"c"}}}},
		{Version: "0.2.0", Date: "2024-02-01", Sections: []Section{{Name: "Fixed", Items: []string{"b1", "b2"}}}},
		{Version: "0.1.0", Date: "2024-01-01", Sections: []Section{{Name: "Added", Items: []string{"a"}}}},
	}
}

func TestReleases_Get(t *testing.T) {
	rs := sampleReleases()

	tests := map[string]struct {
		query   string
		version string
	}{
		"bare version":       {"0.2.0", "0.2.0"},
		"v prefix":           {"v0.2.0", "0.2.0"},
		"uppercase V prefix": {"V0.3.0", "0.3.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := rs.Get(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.version, r.Version)
		})
	}
}

func TestReleases_GetNotFound(t *testing.T) {
	rs := sampleReleases()

	_, err := rs.Get("9.9.9")
	require.Error(t, err)

	var notFound *VersionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "9.9.9", notFound.Version)
	assert.Equal(t, []string{"0.3.0", "0.2.0", "0.1.0"}, notFound.Available)
}

func TestReleases_Versions(t *testing.T) {
	assert.Equal(t, []string{"0.3.0", "0.2.0", "0.1.0"}, sampleReleases().Versions())
}

func TestReleases_Latest(t *testing.T) {
	rs := sampleReleases()
	require.NotNil(t, rs.Latest())
	assert.Equal(t, "0.3.0", rs.Latest().Version)

	assert.Nil(t, Releases{}.Latest())
}

func TestReleases_FirstN(t *testing.T) {
	rs := sampleReleases()

	tests := map[string]struct {
		n        int
		expected []string
	}{
		"fewer than available": {2, []string{"0.3.0", "0.2.0"}},
		"exactly available":    {3, []string{"0.3.0", "0.2.0", "0.1.0"}},
		"more than available":  {10, []string{"0.3.0", "0.2.0", "0.1.0"}},
		"zero":                 {0, []string{}},
		"negative":             {-1, []string{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rs.FirstN(tt.n).Versions())
		})
	}
}

func TestReleases_ItemCount(t *testing.T) {
	assert.Equal(t, 4, sampleReleases().ItemCount())
}
