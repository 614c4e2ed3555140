package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#fafafa")
	require.NoError(t, err)
	assert.Equal(t, RGB{0xfa, 0xfa, 0xfa}, c)

	// The hash is optional.
	c, err = ParseHex("1fa8f1")
	require.NoError(t, err)
	assert.Equal(t, RGB{0x1f, 0xa8, 0xf1}, c)
}

func TestParseHexShortForm(t *testing.T) {
	c, err := ParseHex("#abc")
	require.NoError(t, err)
	assert.Equal(t, RGB{0xaa, 0xbb, 0xcc}, c)
}

func TestParseHexInvalid(t *testing.T) {
	for _, s := range []string{"", "#", "#12345", "#xyzxyz", "oops", "#99"} {
		_, err := ParseHex(s)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", s)
	}
}
