package radix

import (
	"bytes"
	"fmt"
	"net"
)

// Family identifies the address family of a prefix.
type Family int

const (
	V4 Family = 4
	V6 Family = 6
)

// Bits returns the number of address bits in the family (32 or 128).
func (f Family) Bits() int {
	if f == V4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	if f == V4 {
		return "ipv4"
	}
	return "ipv6"
}

// Prefix is an immutable network prefix: an address family, a canonical
// address and a bit length. The address is canonical in the sense that
// every bit at position >= Bitlen is zero, so two prefixes describing the
// same network always compare equal regardless of the host bits they were
// built from.
type Prefix struct {
	family Family
	addr   []byte
	bitlen int
}

// NewPrefix builds a canonical Prefix from a packed address and a prefix
// length. The family is derived from the address size: 4 bytes is IPv4,
// 16 bytes is IPv6, anything else is ErrInvalidFamily. A bitlen outside
// [0, 32] (IPv4) or [0, 128] (IPv6) is ErrInvalidLength.
func NewPrefix(addr []byte, bitlen int) (*Prefix, error) {
	var family Family
	switch len(addr) {
	case net.IPv4len:
		family = V4
	case net.IPv6len:
		family = V6
	default:
		return nil, ErrInvalidFamily
	}
	if bitlen < 0 || bitlen > family.Bits() {
		return nil, ErrInvalidLength
	}
	p := &Prefix{
		family: family,
		addr:   make([]byte, len(addr)),
		bitlen: bitlen,
	}
	copy(p.addr, addr)
	maskAddr(p.addr, bitlen)
	return p, nil
}

// Family returns the address family of the prefix.
func (p *Prefix) Family() Family { return p.family }

// Bitlen returns the number of significant leading bits.
func (p *Prefix) Bitlen() int { return p.bitlen }

// Packed returns a copy of the canonical address bytes.
func (p *Prefix) Packed() []byte {
	out := make([]byte, len(p.addr))
	copy(out, p.addr)
	return out
}

// Network returns the canonical network address in textual form.
func (p *Prefix) Network() string {
	return net.IP(p.addr).String()
}

// String returns the prefix in CIDR form, e.g. "10.0.0.0/8".
func (p *Prefix) String() string {
	return fmt.Sprintf("%s/%d", p.Network(), p.bitlen)
}

// Equal reports whether two prefixes describe the same network. Both
// sides are already canonical, so a byte-wise comparison suffices.
func (p *Prefix) Equal(o *Prefix) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.family == o.family && p.bitlen == o.bitlen &&
		bytes.Equal(p.addr, o.addr)
}

// maskAddr zeroes every bit of addr at position >= bitlen, including the
// partial byte at the boundary.
func maskAddr(addr []byte, bitlen int) {
	q, r := bitlen/8, bitlen%8
	if r != 0 {
		addr[q] &= 0xff << (8 - r)
		q++
	}
	for ; q < len(addr); q++ {
		addr[q] = 0
	}
}

// addrBit reports whether the bit at the given position is set. Bit 0 is
// the most significant bit of the first byte.
func addrBit(addr []byte, bit int) bool {
	return addr[bit>>3]&(0x80>>(bit&0x07)) != 0
}

// prefixMatch reports whether the first masklen bits of a and b agree.
func prefixMatch(a, b []byte, masklen int) bool {
	q, r := masklen/8, masklen%8
	if !bytes.Equal(a[:q], b[:q]) {
		return false
	}
	if r == 0 {
		return true
	}
	m := byte(0xff << (8 - r))
	return a[q]&m == b[q]&m
}
