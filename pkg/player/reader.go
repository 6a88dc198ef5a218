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
	"io"

	"github.com/aabcompass/player/pkg/layers"
)

// RecordReader pulls fixed-size records from an input byte stream
type RecordReader struct {
	src io.Reader
	buf []byte
	records int
}

func NewRecordReader(src io.Reader) *RecordReader {
	return &RecordReader{
		src: src,
		buf: make([]byte, layers.RecordSize),
	}
}

// Next reads exactly one record. It returns io.EOF at a clean end of stream
// and ErrTruncated when the stream ends inside a record; a short read is
// terminal for the whole run. The returned record shares the reader's buffer
// and is only valid until the next call.
func (r *RecordReader) Next() (layers.Record, error) {
	n, err := io.ReadFull(r.src, r.buf)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return nil, ErrTruncated{RecordNum: r.records + 1, Got: n}
	}
	if err != nil {
		return nil, err
	}
	r.records++
	return layers.Record(r.buf), nil
}

// Records returns the number of complete records read so far
func (r *RecordReader) Records() int {
	return r.records
}
