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
	"bytes"
	"testing"

	"github.com/google/gopacket"
)

func TestFrameLayerDecode(t *testing.T) {
	payload := make([]byte, 3*PMTDataSize)
	for i := range payload {
		payload[i] = byte(i / PMTDataSize)
	}

	frame := &FrameLayer{}
	if err := frame.DecodeFromBytes(payload, gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("DecodeFromBytes failed: %v", err)
	}
	if len(frame.PMTData) != 3 {
		t.Fatalf("PMTData blocks = %d, want 3", len(frame.PMTData))
	}
	for i, block := range frame.PMTData {
		if len(block) != PMTDataSize {
			t.Fatalf("block %d length = %d, want %d", i, len(block), PMTDataSize)
		}
		if block[0] != byte(i) {
			t.Errorf("block %d starts with %d, want %d", i, block[0], i)
		}
	}
}

func TestFrameLayerDecodeRejectsBadLengths(t *testing.T) {
	for _, length := range []int{0, 1, PMTDataSize - 1, PMTDataSize + 1, (PMTsPerFrame + 1) * PMTDataSize} {
		frame := &FrameLayer{}
		err := frame.DecodeFromBytes(make([]byte, length), gopacket.NilDecodeFeedback)
		if err == nil {
			t.Errorf("DecodeFromBytes accepted %d bytes", length)
		}
	}
}

func TestFrameLayerSerialize(t *testing.T) {
	first := bytes.Repeat([]byte{0x11}, PMTDataSize)
	second := bytes.Repeat([]byte{0x22}, PMTDataSize)
	frame := &FrameLayer{PMTData: [][]byte{first, second}}

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, frame); err != nil {
		t.Fatalf("SerializeLayers failed: %v", err)
	}
	want := append(append([]byte{}, first...), second...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("serialized payload does not match the input blocks")
	}
}

func TestFrameLayerSerializeRejectsOddBlock(t *testing.T) {
	frame := &FrameLayer{PMTData: [][]byte{make([]byte, PMTDataSize - 1)}}
	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, frame); err == nil {
		t.Fatal("Expected error for odd block size, got nil")
	}
}
