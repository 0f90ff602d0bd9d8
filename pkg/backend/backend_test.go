package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quicklinks/pkg/links"
	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

func TestNewUnknown(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	_, err = New("redis")
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

// TestRegistryOnEveryBackend exercises the registry contract against each
// real backend, including persistence across a detach for durable ones.
func TestRegistryOnEveryBackend(t *testing.T) {
	tests := []struct {
		backend string
		durable bool
	}{
		{backend: types.BackendMemory, durable: false},
		{backend: types.BackendFile, durable: true},
		{backend: types.BackendSQLite, durable: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := types.Config{Backend: tt.backend, DataDir: t.TempDir()}

			b, err := Open(cfg)
			require.NoError(t, err)

			r := links.NewRegistry(b)
			assert.Empty(t, r.UserLinks())
			assert.Len(t, r.AllLinks(), len(links.SystemLinks()))

			l1 := []types.Link{{ID: "x", Title: "X", URL: "/x", Icon: "🔧"}}
			l2 := []types.Link{{ID: "y", Title: "Y", URL: "https://y.example/", Icon: "🌐"}}
			require.NoError(t, r.SaveUserLinks(l1))
			require.NoError(t, r.SaveUserLinks(l2))
			assert.Equal(t, l2, r.UserLinks())

			all := r.AllLinks()
			require.Len(t, all, len(links.SystemLinks())+1)
			assert.Equal(t, "oa", all[0].ID)
			assert.Equal(t, "y", all[len(all)-1].ID)

			require.NoError(t, b.Detach())

			b2, err := Open(cfg)
			require.NoError(t, err)
			defer b2.Detach()

			got := links.NewRegistry(b2).UserLinks()
			if tt.durable {
				assert.Equal(t, l2, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}
