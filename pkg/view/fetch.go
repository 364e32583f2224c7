package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirFetcher resolves candidate locations against an artifact directory on
// the local filesystem.
type DirFetcher struct {
	Root string
}

// Fetch reads the artifact at location relative to the root. Locations that
// would escape the root are rejected.
func (d DirFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := filepath.Clean(filepath.FromSlash(location))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("location escapes artifact root: %s", location)
	}
	return os.ReadFile(filepath.Join(d.Root, clean))
}

var _ Fetcher = DirFetcher{}
