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
	"strconv"
	"strings"

	"github.com/aabcompass/player/pkg/layers"
)

const (
	// SelectionAll selects all PMT channels of a frame
	SelectionAll = "all"
)

// Selection is the list of PMT channel indices forwarded into outgoing
// packets, always in ascending order
type Selection []layers.ChannelNum

// AllChannels returns the selection covering every channel of a frame
func AllChannels() Selection {
	sel := make(Selection, layers.PMTsPerFrame)
	for i := range sel {
		sel[i] = layers.ChannelNum(i)
	}
	return sel
}

// ParseSelection parses a channel selection string: either "all" or a
// comma-separated list of indices and inclusive ranges, e.g. "12-17,30-35".
// Indices must be within 0..35 and must not repeat.
func ParseSelection(spec string) (Selection, error) {
	if spec == SelectionAll {
		return AllChannels(), nil
	}
	if spec == "" {
		return nil, ErrBadSelection{Spec: spec, What: "empty selection"}
	}

	var seen [layers.PMTsPerFrame]bool
	for _, token := range strings.Split(spec, ",") {
		lo, hi, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		for ch := lo; ch <= hi; ch++ {
			if seen[ch] {
				return nil, ErrBadSelection{Spec: spec, What: "duplicate channel " + strconv.Itoa(ch)}
			}
			seen[ch] = true
		}
	}

	var sel Selection
	for ch, ok := range seen {
		if ok {
			sel = append(sel, layers.ChannelNum(ch))
		}
	}
	return sel, nil
}

func parseToken(token string) (int, int, error) {
	bounds := strings.SplitN(token, "-", 2)
	lo, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return 0, 0, ErrBadSelection{Spec: token, What: "not a channel number"}
	}
	hi := lo
	if len(bounds) == 2 {
		hi, err = strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return 0, 0, ErrBadSelection{Spec: token, What: "not a channel number"}
		}
	}
	if lo < 0 || hi >= layers.PMTsPerFrame {
		return 0, 0, ErrBadSelection{Spec: token, What: "channel out of range 0..35"}
	}
	if hi < lo {
		return 0, 0, ErrBadSelection{Spec: token, What: "range bounds reversed"}
	}
	return lo, hi, nil
}
