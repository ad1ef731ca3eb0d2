package fixed

import (
	"errors"
	"fmt"
)

var (
	// ErrNullAddress is returned when resolving a zero address.
	ErrNullAddress = errors.New("null address")
	// ErrNoResolver is returned when resolving without a memory source.
	ErrNoResolver = errors.New("no resolver")
)

// Address is a 32-bit pointer into the game process. It is never dereferenced directly.
type Address uint32

// Resolver reads memory from a running game process.
type Resolver interface {
	ReadAt(addr Address, size int) ([]byte, error)
}

// IsNull reports whether the address is zero.
func (a Address) IsNull() bool { return a == 0 }

// Offset returns the address advanced by n bytes.
func (a Address) Offset(n int32) Address { return a + Address(n) }

// String formats the address as hex.
func (a Address) String() string { return fmt.Sprintf("0x%08X", uint32(a)) }

// Resolve reads size bytes at the address through r.
func (a Address) Resolve(r Resolver, size int) ([]byte, error) {
	if a.IsNull() {
		return nil, ErrNullAddress
	}
	if r == nil {
		return nil, ErrNoResolver
	}

	data, err := r.ReadAt(a, size)
	if err != nil {
		return nil, fmt.Errorf("reading %d bytes at %s: %w", size, a, err)
	}
	return data, nil
}
