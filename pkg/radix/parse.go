package radix

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ParsePrefix parses a prefix from CIDR text, e.g. "10.0.0.0/8" or
// "2001:db8::/32". A bare address parses as a host prefix (/32 or /128).
func ParsePrefix(s string) (*Prefix, error) {
	network, lenText, found := strings.Cut(s, "/")
	if !found {
		return parseNetwork(network, -1, false)
	}
	masklen, err := strconv.Atoi(lenText)
	if err != nil {
		return nil, fmt.Errorf("radix: invalid prefix length %q", lenText)
	}
	return parseNetwork(network, masklen, true)
}

// ParseNetwork parses a network address given separately from its prefix
// length. The network must not carry a "/length" suffix of its own.
func ParseNetwork(network string, masklen int) (*Prefix, error) {
	if strings.Contains(network, "/") {
		return nil, fmt.Errorf("radix: prefix length specified twice in %q", network)
	}
	return parseNetwork(network, masklen, true)
}

// PrefixFromPacked builds a prefix from a packed binary address, such as
// the bytes returned by net.IP.To4 or To16. A negative masklen selects
// the family default: /32 for a 4-byte address, /128 for a 16-byte one.
func PrefixFromPacked(packed []byte, masklen int) (*Prefix, error) {
	if masklen < 0 {
		switch len(packed) {
		case net.IPv4len:
			masklen = 32
		case net.IPv6len:
			masklen = 128
		default:
			return nil, ErrInvalidFamily
		}
	}
	return NewPrefix(packed, masklen)
}

func parseNetwork(network string, masklen int, explicit bool) (*Prefix, error) {
	ip := net.ParseIP(network)
	if ip == nil {
		return nil, fmt.Errorf("radix: invalid address %q", network)
	}
	// The textual form decides the family: "::ffff:10.0.0.0" stays IPv6
	// even though it packs into 4 bytes.
	var addr []byte
	if v4 := ip.To4(); v4 != nil && !strings.Contains(network, ":") {
		addr = v4
	} else {
		addr = ip.To16()
	}
	if !explicit {
		if len(addr) == net.IPv4len {
			masklen = 32
		} else {
			masklen = 128
		}
	}
	return NewPrefix(addr, masklen)
}
