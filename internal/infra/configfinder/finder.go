package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/ports"
)

// DefaultNames are tried in order in every directory.
var DefaultNames = []string{"multirange.yaml", "multirange.yml", "multirange.toml"}

// Finder locates a slider config by searching upward from a directory.
type Finder struct {
	Names []string // defaults to DefaultNames
}

func NewFinder() *Finder {
	return &Finder{Names: DefaultNames}
}

var _ ports.ConfigLocator = (*Finder)(nil)

// FindConfig returns the path of the first config file found in startDir or
// one of its parents.
func (f *Finder) FindConfig(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	names := f.Names
	if len(names) == 0 {
		names = DefaultNames
	}

	cur := filepath.Clean(abs)
	for {
		for _, name := range names {
			p := filepath.Join(cur, name)
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				return p, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "configfinder.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
