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

package layers

import (
	"fmt"
)

// ErrRecordTooShort returned when a buffer is too small to hold a record header
type ErrRecordTooShort struct {
	Length int
}

func (e ErrRecordTooShort) Error() string {
	return fmt.Sprintf("Record buffer too short: %d bytes, header is %d bytes", e.Length, RecordHeaderSize)
}

// ErrFramePayload returned when a datagram is not a sequence of whole PMT data blocks
type ErrFramePayload struct {
	Length int
}

func (e ErrFramePayload) Error() string {
	return fmt.Sprintf("Frame payload must be 1 to %d blocks of %d bytes, got %d bytes",
		PMTsPerFrame, PMTDataSize, e.Length)
}
