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
	"github.com/google/gopacket"

	"github.com/aabcompass/player/pkg/layers"
)

// FramePayload builds the datagram payload for one frame: the data sub-fields
// of the selected channels concatenated in ascending channel order. An empty
// selection yields a nil payload. Pure function of its arguments.
func FramePayload(record layers.Record, frame int, selection Selection) ([]byte, error) {
	if len(selection) == 0 {
		return nil, nil
	}

	frameLayer := &layers.FrameLayer{}
	for _, ch := range selection {
		frameLayer.PMTData = append(frameLayer.PMTData, record.PMTData(frame, ch))
	}

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, frameLayer); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
