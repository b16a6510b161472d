package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPrefixValidation verifies family and length validation on the
// core constructor.
func TestNewPrefixValidation(t *testing.T) {
	_, err := NewPrefix([]byte{10, 0, 0}, 8)
	assert.ErrorIs(t, err, ErrInvalidFamily, "3-byte address must be rejected")

	_, err = NewPrefix(make([]byte, 5), 8)
	assert.ErrorIs(t, err, ErrInvalidFamily, "5-byte address must be rejected")

	_, err = NewPrefix([]byte{10, 0, 0, 0}, -1)
	assert.ErrorIs(t, err, ErrInvalidLength, "negative length must be rejected")

	_, err = NewPrefix([]byte{10, 0, 0, 0}, 33)
	assert.ErrorIs(t, err, ErrInvalidLength, "/33 is out of range for IPv4")

	_, err = NewPrefix(make([]byte, 16), 129)
	assert.ErrorIs(t, err, ErrInvalidLength, "/129 is out of range for IPv6")

	p, err := NewPrefix(make([]byte, 16), 128)
	require.NoError(t, err)
	assert.Equal(t, V6, p.Family())
}

// TestPrefixCanonicalization verifies that host bits beyond the prefix
// length are cleared, including the partial byte at the boundary.
func TestPrefixCanonicalization(t *testing.T) {
	p, err := ParsePrefix("255.255.255.255/15")
	require.NoError(t, err)
	assert.Equal(t, "255.254.0.0/15", p.String(), "host bits must be masked off")

	p, err = ParsePrefix("10.255.255.255/28")
	require.NoError(t, err)
	assert.Equal(t, "10.255.255.240/28", p.String())

	p, err = ParsePrefix("dead:beef:8888:9999::/32")
	require.NoError(t, err)
	assert.Equal(t, "dead:beef::/32", p.String())
}

// TestParsePrefix covers the three textual input forms and their error
// cases.
func TestParsePrefix(t *testing.T) {
	p, err := ParsePrefix("10.0.0.0/8")
	require.NoError(t, err)
	assert.Equal(t, V4, p.Family())
	assert.Equal(t, 8, p.Bitlen())
	assert.Equal(t, "10.0.0.0", p.Network())

	// a bare address is a host prefix
	p, err = ParsePrefix("127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 32, p.Bitlen())

	p, err = ParsePrefix("2001:db8::")
	require.NoError(t, err)
	assert.Equal(t, V6, p.Family())
	assert.Equal(t, 128, p.Bitlen())

	_, err = ParsePrefix("blah/32")
	assert.Error(t, err)
	_, err = ParsePrefix("blah")
	assert.Error(t, err)
	_, err = ParsePrefix("10.0.0.0/x")
	assert.Error(t, err)
	_, err = ParsePrefix("127.0.0.1/64")
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = ParsePrefix("::/256")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

// TestParseNetwork verifies the separate network+length form.
func TestParseNetwork(t *testing.T) {
	p, err := ParseNetwork("10.0.0.0", 16)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/16", p.String())

	_, err = ParseNetwork("127.0.0.1", -2)
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = ParseNetwork("::", -2)
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = ParseNetwork("10.0.0.0/8", 8)
	assert.Error(t, err, "length given twice must be rejected")
}

// TestPrefixFromPacked verifies packed binary input with and without an
// explicit length.
func TestPrefixFromPacked(t *testing.T) {
	p, err := PrefixFromPacked([]byte{224, 20, 11, 64}, 26)
	require.NoError(t, err)
	assert.Equal(t, V4, p.Family())
	assert.Equal(t, "224.20.11.64/26", p.String())
	assert.Equal(t, []byte{224, 20, 11, 64}, p.Packed())

	// 4 bytes defaults to /32
	p, err = PrefixFromPacked([]byte{10, 1, 2, 3}, -1)
	require.NoError(t, err)
	assert.Equal(t, 32, p.Bitlen())

	packed := []byte{
		0xde, 0xad, 0xbe, 0xef, 0x12, 0x34, 0x56, 0x78,
		0x9a, 0xbc, 0xde, 0xf0, 0, 0, 0, 0,
	}
	p, err = PrefixFromPacked(packed, 108)
	require.NoError(t, err)
	assert.Equal(t, V6, p.Family())
	assert.Equal(t, "dead:beef:1234:5678:9abc:def0::/108", p.String())

	// 16 bytes defaults to /128
	p, err = PrefixFromPacked(packed, -1)
	require.NoError(t, err)
	assert.Equal(t, 128, p.Bitlen())

	_, err = PrefixFromPacked([]byte{1, 2, 3}, -1)
	assert.ErrorIs(t, err, ErrInvalidFamily)
	_, err = PrefixFromPacked([]byte{1, 2, 3, 4}, 40)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

// TestPrefixEqual verifies equality over family, length and masked
// address.
func TestPrefixEqual(t *testing.T) {
	a, _ := ParsePrefix("10.255.255.255/28")
	b, _ := ParsePrefix("10.255.255.240/28")
	c, _ := ParsePrefix("10.255.255.240/29")
	assert.True(t, a.Equal(b), "same network after masking must compare equal")
	assert.False(t, a.Equal(c), "different lengths must not compare equal")

	v4, _ := ParsePrefix("255.255.255.255/32")
	v6, _ := ParsePrefix("ffff::/32")
	assert.False(t, v4.Equal(v6), "families must not mix")
}
