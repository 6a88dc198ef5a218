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
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	// FrameLayerNum identifies the layer
	FrameLayerNum = 2001
)

// FrameLayer is the payload of one replayed frame on the wire: the 256-byte
// data sub-fields of the selected PMTs back to back, in ascending channel
// order. There is no envelope, no length prefix and no checksum.
type FrameLayer struct {
	layers.BaseLayer
	// PMTData holds one 256-byte block per forwarded channel
	PMTData [][]byte
}

var FrameLayerType = gopacket.RegisterLayerType(FrameLayerNum,
	gopacket.LayerTypeMetadata{Name: "PDMFrameLayerType", Decoder: gopacket.DecodeFunc(DecodeFrameLayer)})

// LayerType returns the type of the frame layer in the layer catalog
func (f *FrameLayer) LayerType() gopacket.LayerType {
	return FrameLayerType
}

// DecodeFromBytes parses a replayed datagram back into per-PMT blocks
func (f *FrameLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) == 0 || len(data)%PMTDataSize != 0 || len(data)/PMTDataSize > PMTsPerFrame {
		df.SetTruncated()
		return ErrFramePayload{Length: len(data)}
	}

	f.BaseLayer = layers.BaseLayer{
		Contents: data,
		Payload:  []byte{},
	}

	for offset := 0; offset < len(data); offset += PMTDataSize {
		f.PMTData = append(f.PMTData, data[offset:offset+PMTDataSize])
	}

	return nil
}

// SerializeTo serializes the frame layer into bytes and writes the bytes to the SerializeBuffer
func (f *FrameLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	for _, block := range f.PMTData {
		if len(block) != PMTDataSize {
			return ErrFramePayload{Length: len(block)}
		}
		blockBytes, err := b.AppendBytes(PMTDataSize)
		if err != nil {
			return err
		}
		copy(blockBytes, block)
	}
	return nil
}

func DecodeFrameLayer(data []byte, p gopacket.PacketBuilder) error {
	f := &FrameLayer{}
	err := f.DecodeFromBytes(data, p)
	if err != nil {
		return err
	}
	p.AddLayer(f)
	return nil
}
