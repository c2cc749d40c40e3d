package export

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/packlist/pkg/errors"
)

// Opener hands a file path or URI to the desktop
type Opener func(target string) error

// SystemOpener opens target with the platform's default handler
func SystemOpener(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return errors.Newf(errors.ErrInternal, "unsupported platform: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to open %s", target)
	}
	return nil
}
