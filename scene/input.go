package scene

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Key is a logical control, bound to physical keys by the host.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyRotateLeft
	KeyRotateRight
	KeyReset

	keyCount
)

var keyNames = [keyCount]string{
	KeyForward:     "forward",
	KeyBackward:    "backward",
	KeyRotateLeft:  "rotate-left",
	KeyRotateRight: "rotate-right",
	KeyReset:       "reset",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Keys returns every logical key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// ParseKey resolves a logical key by name, case-insensitively.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, errors.Errorf("unknown control %q", name)
}

// KeySet is an Input backed by a fixed set of held keys.
type KeySet map[Key]bool

func (s KeySet) IsHeld(key Key) bool {
	return s[key]
}
