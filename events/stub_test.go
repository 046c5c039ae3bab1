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

package events

import "sync"

type publishedMsg struct {
	subject string
	data    []byte
}

// stubConn records published messages.
type stubConn struct {
	mux       sync.Mutex
	published []publishedMsg
	err       error
	drained   bool
}

func (conn *stubConn) Publish(subject string, data []byte) error {
	conn.mux.Lock()
	defer conn.mux.Unlock()
	if conn.err != nil {
		return conn.err
	}
	conn.published = append(conn.published, publishedMsg{subject: subject, data: data})
	return nil
}

func (conn *stubConn) Drain() error {
	conn.mux.Lock()
	defer conn.mux.Unlock()
	conn.drained = true
	return nil
}

func (conn *stubConn) messages() []publishedMsg {
	conn.mux.Lock()
	defer conn.mux.Unlock()
	return append([]publishedMsg{}, conn.published...)
}
