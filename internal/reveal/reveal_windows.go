//go:build windows

package reveal

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// cryptProtectLocalMachine is CRYPTPROTECT_LOCAL_MACHINE, which x/sys
// does not export.
const cryptProtectLocalMachine = 0x4

// DPAPI recovers blobs protected with CryptProtectData. Recovery only
// succeeds under the identity that originally protected the blob.
type DPAPI struct{}

func (DPAPI) Reveal(ciphertext []byte, scope Scope) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, ErrNotAccessible
	}

	in := windows.DataBlob{Size: uint32(len(ciphertext)), Data: &ciphertext[0]}
	var out windows.DataBlob

	flags := uint32(windows.CRYPTPROTECT_UI_FORBIDDEN)
	if scope == LocalMachine {
		flags |= cryptProtectLocalMachine
	}
	if err := windows.CryptUnprotectData(&in, nil, nil, 0, nil, flags, &out); err != nil {
		return nil, ErrNotAccessible
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(out.Data)))

	plain := make([]byte, out.Size)
	copy(plain, unsafe.Slice(out.Data, out.Size))
	return plain, nil
}
