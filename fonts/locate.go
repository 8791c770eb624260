//go:build !js

package fonts

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/dragonfly"
)

// systemFont searches the user and system font directories for a font file
// matching a family name. "DejaVu Serif" matches e.g. "DejaVuSerif.ttf",
// "dejavu-serif.ttf" or "DejaVuSerif-Regular.ttf".
func systemFont(ctx context.Context, family string) ([]byte, error) {
	var lastErr error
	for _, candidate := range fileNameCandidates(family) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := findfont.Find(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		tracer().Debugf("reading font %q from %s", family, path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", dragonfly.ErrIO, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s: %v", dragonfly.ErrFontSelection, family, lastErr)
}

func fileNameCandidates(family string) []string {
	fields := strings.Fields(family)
	if len(fields) == 0 {
		return nil
	}
	joined := strings.Join(fields, "")
	candidates := []string{joined + ".ttf", joined + "-Regular.ttf", joined + ".otf"}
	if len(fields) > 1 {
		candidates = append(candidates, strings.Join(fields, "-")+".ttf",
			strings.Join(fields, "_")+".ttf")
	}
	return append(candidates, joined)
}
