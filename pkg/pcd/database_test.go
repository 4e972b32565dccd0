package pcd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pcdgen/pkg/pcd"
	"github.com/macropower/pcdgen/pkg/pcderrors"
)

func newTestDatabase() *pcd.Database {
	return &pcd.Database{
		Groups: []pcd.Group{
			{Name: "mathematics", Entries: []pcd.Entry{{Name: "PI", Value: "3.14159"}}},
			{Name: "physics", Entries: []pcd.Entry{{Name: "G", Value: "9.81"}}},
			{Name: "chemistry", Entries: []pcd.Entry{{Name: "NA", Value: "6.02214076e23"}}},
		},
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      error
		names    []string
		want     []string
		contains string
	}{
		"nil selects all": {
			names: nil,
			want:  []string{"mathematics", "physics", "chemistry"},
		},
		"empty selects all": {
			names: []string{},
			want:  []string{"mathematics", "physics", "chemistry"},
		},
		"database order is kept": {
			names: []string{"chemistry", "mathematics"},
			want:  []string{"mathematics", "chemistry"},
		},
		"repeated names": {
			names: []string{"physics", "physics"},
			want:  []string{"physics"},
		},
		"unknown group": {
			names:    []string{"physics", "biology"},
			err:      pcderrors.ErrUnknownGroup,
			contains: "unknown group: biology (valid groups: mathematics, physics, chemistry)",
		},
		"all unknown groups are named": {
			names:    []string{"biology", "physics", "geology", "biology"},
			err:      pcderrors.ErrUnknownGroup,
			contains: "unknown group: biology, geology (",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestDatabase().Select(tc.names)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Contains(t, err.Error(), tc.contains)

				return
			}

			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, g := range got {
				names = append(names, g.Name)
			}

			assert.Equal(t, tc.want, names)
		})
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	db := newTestDatabase()

	g, ok := db.Group("physics")
	require.True(t, ok)
	assert.Equal(t, "G", g.Entries[0].Name)

	_, ok = db.Group("biology")
	assert.False(t, ok)
}
