//go:build !windows

package platform

type unsupportedAutostart struct{}

func newAutostart() Autostart {
	return unsupportedAutostart{}
}

func (unsupportedAutostart) Enabled(string) (bool, error) { return false, nil }

func (unsupportedAutostart) Enable(string, string) error { return ErrAutostartUnsupported }

// Disable succeeds so that saving settings with autostart off never fails.
func (unsupportedAutostart) Disable(string) error { return nil }
