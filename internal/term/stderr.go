package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CaptureStderr redirects file descriptor 2 into the named file for the
// life of the session. Anything a dependency prints to stderr would
// otherwise be drawn straight over the alternate screen; sending it to the
// log file keeps the display intact and the output inspectable. The
// returned restore function puts the original stderr back.
func CaptureStderr(path string) (restore func() error, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("capture stderr: open %s: %w", path, err)
	}

	saved, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("capture stderr: save descriptor: %w", err)
	}

	if err := unix.Dup3(int(f.Fd()), int(os.Stderr.Fd()), 0); err != nil {
		unix.Close(saved)
		f.Close()
		return nil, fmt.Errorf("capture stderr: redirect: %w", err)
	}
	f.Close()

	return func() error {
		defer unix.Close(saved)
		if err := unix.Dup3(saved, int(os.Stderr.Fd()), 0); err != nil {
			return fmt.Errorf("restore stderr: %w", err)
		}
		return nil
	}, nil
}
