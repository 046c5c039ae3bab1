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

package flow

import (
	"context"
	"time"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/card"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

const cleanupTimeout = 10 * time.Second

// Dependencies are the collaborators of the flow managers.
type Dependencies struct {
	Agent    agent.Agent
	Users    user.Store
	Wait     agent.WaitOptions
	Renderer card.Renderer
	Icon     card.IconProvider
	Observer Observer
}

// steps implements the steps flows are composed of, on behalf of a single flow.
type steps struct {
	Dependencies
	flow *Flow
}

func (s steps) properties() agent.Properties {
	result := agent.Properties{agent.PropertyType: string(s.flow.Kind())}
	if s.Icon == nil {
		return result
	}
	icon, err := s.Icon.GetImage()
	if err != nil {
		s.flow.logger().WithError(err).Warn("Unable to load connection icon")
	} else if icon != "" {
		result[agent.PropertyIcon] = icon
	}
	return result
}

// cleanup deletes an agent record that's no longer of use. It also runs when ctx is cancelled, and failures are only logged.
func (s steps) cleanup(ctx context.Context, record string, id string, del func(ctx context.Context, id string) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if err := del(ctx, id); err != nil {
		s.flow.logger().WithError(err).Warnf("Unable to delete %s (id=%s)", record, id)
		return
	}
	s.flow.logger().Debugf("Deleted %s (id=%s)", record, id)
}

func (s steps) deleteVerification(ctx context.Context, id string) {
	s.cleanup(ctx, "verification", id, s.Agent.DeleteVerification)
}
