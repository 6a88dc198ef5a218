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
	"encoding/binary"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/aabcompass/player/pkg/log"
)

// pdmdata.h

const (
	PixelsPerPMT = 64
	KiWordsPerPMT = 8
	SpareWordsPerPMT = 8
	PMTsPerECASIC = 6
	ECASICsPerPDM = 6
	// PMTsPerFrame is the number of channel blocks in one FRAME_SPB_2_L3_V0 frame
	PMTsPerFrame = PMTsPerECASIC * ECASICsPerPDM // 36
	FramesPerRecord = 100

	// PMTDataSize is the data sub-field of one PMT block, the only part that
	// is ever forwarded downstream
	PMTDataSize = PixelsPerPMT * 4 // 256
	// PMTBlockSize is the full PMT_3rd_L3_GEN block in the source layout,
	// data words followed by KI and spare words
	PMTBlockSize = (PixelsPerPMT + KiWordsPerPMT + SpareWordsPerPMT) * 4 // 320
	// FrameSize is one frame in the source layout
	FrameSize = PMTsPerFrame * PMTBlockSize // 11520
	// RecordSize is the full Z_DATA_TYPE_SCI_L3_V3 structure as read from a file
	RecordSize = 1152064
	// FramesOffset is the byte offset of the frames array within a record
	FramesOffset = 28
	RecordHeaderSize = FramesOffset
)

type ChannelNum uint8

// RecordHeader is the Z_DATA_TYPE_SCI_L3_V3 header. Frame extraction needs
// only its size; the words are decoded for inspect output and are not
// interpreted anywhere else.
type RecordHeader struct {
	ZynqHeader uint32 `json:"ZynqHeader"`
	PayloadSize uint32 `json:"PayloadSize"`
	UnixTime uint32 `json:"UnixTime"`
	GTUTime uint32 `json:"GTUTime"`
	Spare [3]uint32 `json:"Spare"`
}

func (h *RecordHeader) String() string {
	result, err := yaml.Marshal(h)
	if err != nil {
		log.Info("Error occured while marshaling record header, %s", err)
		return ""
	}
	return fmt.Sprintf("---\n%s", string(result))
}

// Record is one fixed-size chunk of the input stream holding a record header
// followed by FramesPerRecord frames
type Record []byte

// Header decodes the record header words
func (r Record) Header() (*RecordHeader, error) {
	if len(r) < RecordHeaderSize {
		return nil, ErrRecordTooShort{Length: len(r)}
	}
	h := &RecordHeader{
		ZynqHeader: binary.LittleEndian.Uint32(r[0:4]),
		PayloadSize: binary.LittleEndian.Uint32(r[4:8]),
		UnixTime: binary.LittleEndian.Uint32(r[8:12]),
		GTUTime: binary.LittleEndian.Uint32(r[12:16]),
	}
	for i := range h.Spare {
		h.Spare[i] = binary.LittleEndian.Uint32(r[16+i*4 : 20+i*4])
	}
	return h, nil
}

// Frame returns the full source-layout span of one frame
func (r Record) Frame(frame int) []byte {
	start := FramesOffset + frame*FrameSize
	return r[start : start+FrameSize]
}

// PMTData returns the 256-byte data sub-field of one PMT block. The trailing
// 64 auxiliary bytes of the block are never read.
func (r Record) PMTData(frame int, pmt ChannelNum) []byte {
	start := FramesOffset + frame*FrameSize + int(pmt)*PMTBlockSize
	return r[start : start+PMTDataSize]
}
