/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package player

import (
	"net"
)

// Emitter sends one built payload as one datagram. Fire and forget, datagram
// loss is neither detected nor retried.
type Emitter interface {
	Emit(payload []byte) error
}

// UDPEmitter sends payloads to a fixed destination from an ephemeral UDP socket
type UDPEmitter struct {
	conn *net.UDPConn
	*net.UDPAddr
}

func NewUDPEmitter(addr *net.UDPAddr) (*UDPEmitter, error) {
	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return nil, err
	}
	return &UDPEmitter{
		conn: conn,
		UDPAddr: addr,
	}, nil
}

func (e *UDPEmitter) Emit(payload []byte) error {
	_, err := e.conn.WriteToUDP(payload, e.UDPAddr)
	return err
}

func (e *UDPEmitter) Close() error {
	return e.conn.Close()
}
