package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	const n = 1000
	seen := make(map[ID]struct{}, n)

	prev := New()
	seen[prev] = struct{}{}
	for i := 1; i < n; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id generated")
		seen[id] = struct{}{}

		// Monotonic entropy keeps same-millisecond IDs sorted.
		require.Less(t, prev.String(), id.String())
		prev = id
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips a generated id", func(t *testing.T) {
		id := New()
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects empty and malformed input", func(t *testing.T) {
		_, err := Parse("")
		require.ErrorIs(t, err, ErrInvalid)

		_, err = Parse("not-a-ulid")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id := New()
		parsed, err := Parse("  " + id.String() + "\n")
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at.Truncate(time.Millisecond), id.Time())

	require.True(t, Zero.IsZero())
	require.True(t, Zero.Time().IsZero())
}
