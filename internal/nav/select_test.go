package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func TestSelectVersion(t *testing.T) {
	versions := loadFixture(t)

	tests := []struct {
		name      string
		path      string
		wantFirst string // first link of the selected tree
	}{
		{"next beats default", "/next/foundations/paths", "/next/introduction"},
		{"default fallback", "/quick_start", "/introduction"},
		{"key without trailing slash", "/next", "/next/introduction"},
		{"missing leading slash", "quick_start", "/introduction"},
		{"prefix of key does not match", "/nextgen/x", "/introduction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, err := SelectVersion(tt.path, versions)
			require.NoError(t, err)
			require.NotEmpty(t, sections)
			assert.Equal(t, tt.wantFirst, ensureLeadingSlash(sections[0].Items[0].Link))
		})
	}
}

func TestSelectVersionLongestPrefixIgnoresOrder(t *testing.T) {
	versions := VersionedNav{
		{Key: "/", Sections: []Item{{Text: "root", Link: "/r"}}},
		{Key: "/v1/", Sections: []Item{{Text: "v1", Link: "/v1/r"}}},
		{Key: "/v1/beta/", Sections: []Item{{Text: "beta", Link: "/v1/beta/r"}}},
	}

	sections, err := SelectVersion("/v1/beta/guide", versions)
	require.NoError(t, err)
	assert.Equal(t, "beta", sections[0].Text)

	sections, err = SelectVersion("/v1/guide", versions)
	require.NoError(t, err)
	assert.Equal(t, "v1", sections[0].Text)
}

func TestMatchVersionKeySlash(t *testing.T) {
	tests := []struct {
		path string
		keys []string
		want string
	}{
		{"/nextgen/intro", []string{"/", "/next/"}, "/"},
		{"/next", []string{"/", "/next/"}, "/next/"},
		{"/nextgen/intro", []string{"/", "/next"}, "/next"},
		{"/next/intro", []string{"/", "/next"}, "/next"},
	}
	for _, tt := range tests {
		got, err := MatchVersion(tt.path, tt.keys)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s in %v", tt.path, tt.keys)
	}
}

func TestSelectVersionNoMatch(t *testing.T) {
	versions := VersionedNav{{Key: "/next/", Sections: []Item{{Text: "a", Link: "/next/a"}}}}

	_, err := SelectVersion("/quick_start", versions)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))

	var nm *NoMatchError
	require.ErrorAs(t, err, &nm)
	assert.Equal(t, "/quick_start", nm.Path)
	assert.Equal(t, []string{"/next/"}, nm.Keys)
}

func TestSelectVersionEmpty(t *testing.T) {
	_, err := SelectVersion("/", nil)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolvedSelect(t *testing.T) {
	resolved, err := Resolve(loadFixture(t))
	require.NoError(t, err)

	tree, err := resolved.Select("/next/foundations/paths")
	require.NoError(t, err)
	assert.Equal(t, "/next/", tree.Key)

	tree, err = resolved.Select("/blog/serinus_2_1")
	require.NoError(t, err)
	assert.Equal(t, "/", tree.Key)
}
