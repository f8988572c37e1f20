// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"log/slog"
)

// Fallback tries Primary and, when it fails, Secondary.
type Fallback struct {
	Primary   Extractor
	Secondary Extractor
	Logger    *slog.Logger
}

// Pages returns the primary backend's pages, or the secondary's if the
// primary fails. When both fail the primary error is reported.
func (f *Fallback) Pages(path string) ([]string, error) {
	pages, err := f.Primary.Pages(path)
	if err == nil {
		return pages, nil
	}

	log := loggerOrDiscard(f.Logger)
	log.Debug("primary extractor failed, trying fallback", "path", path, "error", err)

	pages, fbErr := f.Secondary.Pages(path)
	if fbErr != nil {
		return nil, fmt.Errorf("%w (fallback: %v)", err, fbErr)
	}
	return pages, nil
}
