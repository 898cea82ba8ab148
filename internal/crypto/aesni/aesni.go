// Package aesni wraps the hardware AES block engine. Key expansion
// and the block function come from crypto/aes, which uses the AES-NI
// instructions when the CPU has them; Supported reports whether that
// acceleration is actually present.
package aesni

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/cpu"
)

const BlockSize = aes.BlockSize

var (
	ErrInvalidKeyLength   = errors.New("aesni: invalid key length")
	ErrInvalidInputLength = errors.New("aesni: invalid input length")
)

// Mode selects the direction of a cipher operation.
type Mode int

const (
	Decrypt Mode = iota
	Encrypt
)

var (
	probeOnce sync.Once
	hasAES    bool
)

// Supported reports whether the CPU exposes the AES instruction set.
// The probe runs once and is cached for later calls.
func Supported() bool {
	probeOnce.Do(func() {
		hasAES = cpu.X86.HasAES
	})
	return hasAES
}

// Context holds an expanded AES key for 128, 192 or 256 bit keys.
type Context struct {
	block cipher.Block
}

// NewContext expands key into round keys usable by the block
// operations. The key must be 16, 24 or 32 bytes long.
func NewContext(key []byte) (*Context, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, pkgerrors.Wrapf(ErrInvalidKeyLength, "%d bytes", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "expanding key")
	}
	return &Context{block: block}, nil
}

// CryptECB processes a single 16-byte block.
func (c *Context) CryptECB(mode Mode, input, output []byte) error {
	if len(input) != BlockSize || len(output) != BlockSize {
		return pkgerrors.Wrap(ErrInvalidInputLength, "ecb block")
	}

	if mode == Encrypt {
		c.block.Encrypt(output, input)
	} else {
		c.block.Decrypt(output, input)
	}
	return nil
}

// CryptCBC processes input in CBC mode. The length must be a multiple
// of the block size. iv is updated in place so that chained calls
// continue the same stream.
func (c *Context) CryptCBC(mode Mode, iv, input, output []byte) error {
	if len(iv) != BlockSize {
		return pkgerrors.Wrap(ErrInvalidInputLength, "cbc iv")
	}
	if len(input)%BlockSize != 0 || len(output) < len(input) {
		return pkgerrors.Wrap(ErrInvalidInputLength, "cbc data")
	}

	if mode == Encrypt {
		for off := 0; off < len(input); off += BlockSize {
			subtle.XORBytes(output[off:off+BlockSize], input[off:off+BlockSize], iv)
			c.block.Encrypt(output[off:off+BlockSize], output[off:off+BlockSize])
			copy(iv, output[off:off+BlockSize])
		}
		return nil
	}

	tmp := make([]byte, BlockSize)
	for off := 0; off < len(input); off += BlockSize {
		copy(tmp, input[off:off+BlockSize])
		c.block.Decrypt(output[off:off+BlockSize], input[off:off+BlockSize])
		subtle.XORBytes(output[off:off+BlockSize], output[off:off+BlockSize], iv)
		copy(iv, tmp)
	}
	return nil
}
