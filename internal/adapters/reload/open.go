package reload

import (
	"os/exec"
	"runtime"

	"go.trai.ch/zerr"
)

// OpenBrowser opens url in the default browser of the host.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	default:
		return zerr.With(zerr.New("cannot open a browser on this platform"), "os", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return zerr.Wrap(err, "failed to open browser")
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
