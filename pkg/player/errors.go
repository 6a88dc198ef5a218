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
	"fmt"

	"github.com/aabcompass/player/pkg/layers"
)

// ErrBadDestination returned when the destination string is not a valid ip:port pair
type ErrBadDestination struct {
	Destination string
	What string
}

func (e ErrBadDestination) Error() string {
	return fmt.Sprintf("Invalid destination %q: %s", e.Destination, e.What)
}

// ErrBadSelection returned when the channel selection string can not be parsed
type ErrBadSelection struct {
	Spec string
	What string
}

func (e ErrBadSelection) Error() string {
	return fmt.Sprintf("Invalid channel selection %q: %s", e.Spec, e.What)
}

// ErrTruncated returned when the input stream ends in the middle of a record.
// Packets sent for earlier records stand, the run stops.
type ErrTruncated struct {
	RecordNum int
	Got int
}

func (e ErrTruncated) Error() string {
	return fmt.Sprintf("Input stream truncated: record %d is %d bytes, want %d",
		e.RecordNum, e.Got, layers.RecordSize)
}
