//go:build js

package fonts

import (
	"context"
	"fmt"

	"github.com/npillmayer/dragonfly"
)

// systemFont fails on platforms without a file system.
func systemFont(ctx context.Context, family string) ([]byte, error) {
	tracer().Errorf("cannot read font %q: no file system", family)
	return nil, fmt.Errorf("%w: font %s", dragonfly.ErrNoFilesystem, family)
}
