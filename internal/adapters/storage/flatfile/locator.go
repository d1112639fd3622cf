package flatfile

import (
	"os"
	"path/filepath"

	"github.com/jsamuelsen/go-fortune/internal/domain"
)

// Locator resolves the path of the quote database.
//
// By default the database lives beside the running executable. The
// executable path is used as reported by the OS; symlinks to the binary are
// not resolved further, so a symlinked binary finds the database next to
// wherever the OS says the executable is.
type Locator struct {
	name       string
	path       string
	executable func() (string, error)
}

// LocatorConfig configures a Locator.
type LocatorConfig struct {
	// Name is the database base name joined to the executable's directory.
	Name string

	// Path, when non-empty, replaces executable-relative resolution.
	Path string

	// Executable reports the running program's path. Defaults to os.Executable.
	Executable func() (string, error)
}

// NewLocator creates a locator.
func NewLocator(cfg LocatorConfig) *Locator {
	executable := cfg.Executable
	if executable == nil {
		executable = os.Executable
	}

	return &Locator{
		name:       cfg.Name,
		path:       cfg.Path,
		executable: executable,
	}
}

// Locate returns the database path. It fails with domain.ErrLocate when
// the executable cannot be determined or the resolved path does not exist;
// no other location is tried.
func (l *Locator) Locate() (string, error) {
	path := l.path

	if path == "" {
		exe, err := l.executable()
		if err != nil {
			return "", domain.NewLocateError("", "could not find executable", err)
		}

		if exe == "" {
			return "", domain.NewLocateError("", "can't get executable's parent path", nil)
		}

		path = filepath.Join(filepath.Dir(exe), l.name)
	}

	if _, err := os.Stat(path); err != nil {
		return "", domain.NewLocateError(path, "path not found", err)
	}

	return path, nil
}
