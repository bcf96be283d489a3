package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "enabled flag returns true",
			registry: New(map[string]bool{FlagHideActivityFeed: true}),
			flag:     FlagHideActivityFeed,
			expected: true,
		},
		{
			name:     "disabled flag returns false",
			registry: New(map[string]bool{FlagPlainHelp: false}),
			flag:     FlagPlainHelp,
			expected: false,
		},
		{
			name:     "unknown flag returns false",
			registry: New(map[string]bool{FlagPlainHelp: true}),
			flag:     "no-such-flag",
			expected: false,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagPlainHelp,
			expected: false,
		},
		{
			name:     "nil flags map returns false",
			registry: New(nil),
			flag:     FlagPlainHelp,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_All_ReturnsDefensiveCopy(t *testing.T) {
	r := New(map[string]bool{FlagPlainHelp: true})

	snapshot := r.All()
	snapshot[FlagPlainHelp] = false
	snapshot[FlagHideActivityFeed] = true

	require.True(t, r.Enabled(FlagPlainHelp), "registry should not be affected by copy mutation")
	require.False(t, r.Enabled(FlagHideActivityFeed), "registry should not gain flags from copy mutation")
}

func TestRegistry_All_NilSafe(t *testing.T) {
	var r *Registry
	require.Equal(t, map[string]bool{}, r.All())
	require.Equal(t, map[string]bool{}, New(nil).All())
}
