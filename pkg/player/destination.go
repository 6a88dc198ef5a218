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
	"strconv"
)

// ParseDestination validates an "ip:port" destination string. It is called
// before any socket or file is opened so a bad destination fails the run
// without side effects.
func ParseDestination(destination string) (*net.UDPAddr, error) {
	host, portStr, err := net.SplitHostPort(destination)
	if err != nil {
		return nil, ErrBadDestination{Destination: destination, What: "must be ip:port"}
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return nil, ErrBadDestination{Destination: destination, What: "not an IP address"}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port >= 65536 {
		return nil, ErrBadDestination{Destination: destination, What: "port must be within 1..65535"}
	}
	return &net.UDPAddr{IP: ip, Port: port}, nil
}
