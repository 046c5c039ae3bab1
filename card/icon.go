/*
 * Copyright (C) 2024 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package card

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/nuts-foundation/nuts-demo-credentials/card/log"
)

// NewIconProvider returns an IconProvider for the image at the given path.
// When the path is empty, the provider has no icon.
func NewIconProvider(path string) IconProvider {
	return &fileIconProvider{path: path}
}

type fileIconProvider struct {
	path string
	once sync.Once
	icon string
	err  error
}

// GetImage reads the icon on first use.
func (f *fileIconProvider) GetImage() (string, error) {
	if f.path == "" {
		return "", nil
	}
	f.once.Do(func() {
		data, err := os.ReadFile(f.path)
		if err != nil {
			f.err = fmt.Errorf("unable to read icon: %w", err)
			return
		}
		mediaType := http.DetectContentType(data)
		if strings.HasSuffix(strings.ToLower(f.path), ".svg") {
			mediaType = svgMediaType
		}
		log.Logger().Debugf("Loaded connection icon (path=%s, type=%s)", f.path, mediaType)
		f.icon = dataURI(mediaType, data)
	})
	return f.icon, f.err
}
