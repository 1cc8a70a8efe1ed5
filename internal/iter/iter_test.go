package iter

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookahead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := "0123456789"
	numValues := len(input)

	for x := 0; x < numValues; x = x + 1 {
		t.Run(fmt.Sprintf("LA(%d)", x), func(t *testing.T) {
			look := NewLookahead(NewRunes(input), uint8(x))
			for y := 0; y < numValues; y = y + 1 {
				val := look.Next(ctx)
				require.True(t, val.IsPresent())
				require.Equal(t, rune('0'+y), val.Value())

				expectedPeek := y + x
				peek := look.Lookahead(ctx, uint8(x))
				if expectedPeek < numValues {
					require.True(t, peek.IsPresent())
					require.Equal(t, rune('0'+expectedPeek), peek.Value())
				} else {
					require.False(t, peek.IsPresent())
				}
			}
			require.Nil(t, look.Close(ctx))
		})
	}
}

func TestRunes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	runes := NewRunes("aä☃")

	expected := []rune{'a', 'ä', '☃'}
	for _, r := range expected {
		val := runes.Next(ctx)
		require.True(t, val.IsPresent())
		require.Equal(t, r, val.Value())
	}
	require.False(t, runes.Next(ctx).IsPresent())
	require.Nil(t, runes.Close(ctx))
}
