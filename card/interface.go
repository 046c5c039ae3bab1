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

import "github.com/nuts-foundation/nuts-demo-credentials/user"

const (
	// FrontAttribute is the credential attribute holding the image of the front of the card.
	FrontAttribute = "card_front"
	// BackAttribute is the credential attribute holding the image of the back of the card.
	BackAttribute = "card_back"
)

// IsCardAttribute returns true when the credential attribute holds a card image rather than personal info.
func IsCardAttribute(name string) bool {
	return name == FrontAttribute || name == BackAttribute
}

// Renderer renders the images of the card shown in the holder's wallet. Images are returned as data URIs.
type Renderer interface {
	// CreateCardFront renders the front of the card.
	CreateCardFront(personalInfo user.PersonalInfo) (string, error)
	// CreateCardBack renders the back of the card.
	CreateCardBack(personalInfo user.PersonalInfo) (string, error)
}

// IconProvider provides the icon attached to connection and credential offers.
type IconProvider interface {
	// GetImage returns the icon as data URI, or an empty string when there's no icon.
	GetImage() (string, error)
}
