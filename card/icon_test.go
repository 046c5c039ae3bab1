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
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconProvider(t *testing.T) {
	t.Run("no icon", func(t *testing.T) {
		icon, err := NewIconProvider("").GetImage()

		assert.NoError(t, err)
		assert.Empty(t, icon)
	})
	t.Run("PNG", func(t *testing.T) {
		iconPath := path.Join(t.TempDir(), "icon.png")
		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
		require.NoError(t, os.WriteFile(iconPath, png, 0600))
		provider := NewIconProvider(iconPath)

		icon, err := provider.GetImage()
		require.NoError(t, err)
		// read once
		require.NoError(t, os.Remove(iconPath))
		cached, err := provider.GetImage()

		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==", icon)
		assert.Equal(t, icon, cached)
	})
	t.Run("SVG", func(t *testing.T) {
		iconPath := path.Join(t.TempDir(), "icon.svg")
		require.NoError(t, os.WriteFile(iconPath, []byte("<svg/>"), 0600))

		icon, err := NewIconProvider(iconPath).GetImage()

		require.NoError(t, err)
		assert.Equal(t, "data:image/svg+xml;base64,PHN2Zy8+", icon)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := NewIconProvider("/non-existing.png").GetImage()

		assert.ErrorContains(t, err, "unable to read icon")
	})
}
