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
	"embed"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/cbroglie/mustache"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

//go:embed assets/*.mustache
var assets embed.FS

const svgMediaType = "image/svg+xml"

var _ Renderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer creates a Renderer from mustache SVG templates. Empty paths select the built-in templates.
// The issuer is shown on the card, next to the holder's personal info.
func NewTemplateRenderer(issuer string, frontPath string, backPath string) (*TemplateRenderer, error) {
	front, err := parseTemplate(frontPath, "assets/front.svg.mustache")
	if err != nil {
		return nil, err
	}
	back, err := parseTemplate(backPath, "assets/back.svg.mustache")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{issuer: issuer, front: front, back: back}, nil
}

// TemplateRenderer renders cards from mustache SVG templates.
type TemplateRenderer struct {
	issuer string
	front  *mustache.Template
	back   *mustache.Template
}

func parseTemplate(path string, builtin string) (*mustache.Template, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = assets.ReadFile(builtin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read card template: %w", err)
	}
	template, err := mustache.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid card template: %w", err)
	}
	return template, nil
}

func (r TemplateRenderer) CreateCardFront(personalInfo user.PersonalInfo) (string, error) {
	return r.render(r.front, personalInfo)
}

func (r TemplateRenderer) CreateCardBack(personalInfo user.PersonalInfo) (string, error) {
	return r.render(r.back, personalInfo)
}

func (r TemplateRenderer) render(template *mustache.Template, personalInfo user.PersonalInfo) (string, error) {
	vars := make(map[string]string, len(personalInfo)+1)
	for key, value := range personalInfo {
		vars[key] = value
	}
	vars["issuer"] = r.issuer
	rendered, err := template.Render(vars)
	if err != nil {
		return "", fmt.Errorf("could not render card template: %w", err)
	}
	return dataURI(svgMediaType, []byte(rendered)), nil
}

func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
