package launchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		projects []Project
		token    string
		wantName string
		wantErr  bool
	}{
		{
			name:     "slug",
			projects: []Project{{ID: "1", Slug: "abc", Name: "By slug"}},
			token:    "abc",
			wantName: "By slug",
		},
		{
			name:     "symbol ignores case",
			projects: []Project{{ID: "2", ShortSymbol: "XYZ", Name: "By symbol"}},
			token:    "xyz",
			wantName: "By symbol",
		},
		{
			name:     "numeric id",
			projects: []Project{{ID: "42", Name: "By id"}},
			token:    "42",
			wantName: "By id",
		},
		{
			name: "first record in list order wins",
			projects: []Project{
				{ID: "7", Name: "Id match first"},
				{ID: "8", Slug: "7", Name: "Slug match second"},
			},
			token:    "7",
			wantName: "Id match first",
		},
		{
			name:     "no match",
			projects: []Project{{ID: "1", Slug: "abc", ShortSymbol: "ABC"}},
			token:    "nope",
			wantErr:  true,
		},
		{
			name:     "empty token",
			projects: []Project{{}},
			token:    "",
			wantErr:  true,
		},
		{
			name:    "empty collection",
			token:   "abc",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveProject(tc.projects, tc.token)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, got.Name)
		})
	}
}

func TestResolveProjectWithCustomPredicates(t *testing.T) {
	t.Parallel()

	projects := []Project{{ID: "1", Slug: "abc"}}
	_, err := ResolveProjectWith(projects, "abc", MatchID, nil)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := ResolveProjectWith(projects, "abc", nil, MatchSlug)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}
