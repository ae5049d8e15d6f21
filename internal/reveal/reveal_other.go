//go:build !windows

package reveal

// DPAPI is only functional on Windows. Elsewhere every blob is reported
// as not accessible.
type DPAPI struct{}

func (DPAPI) Reveal([]byte, Scope) ([]byte, error) {
	return nil, ErrNotAccessible
}
