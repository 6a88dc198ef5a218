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

package srv

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"

	"github.com/aabcompass/player/pkg/config"
	"github.com/aabcompass/player/pkg/layers"
	"github.com/aabcompass/player/pkg/log"
)

type InPacket struct {
	Data []byte
	gopacket.CaptureInfo
}

// CaptureServer is the receive-side counterpart of the player. It binds a UDP
// socket, decodes replayed frame datagrams and optionally dumps the raw
// payloads to a file. Used to verify a replay end to end.
type CaptureServer struct {
	context.Context
	*config.Config
	*net.UDPAddr
	ChIn chan InPacket
	writer *Writer
}

func NewCaptureServer(cfg *config.Config) (*CaptureServer, error) {
	log.Debug("Initializing capture server with address: %s port: %d",
		cfg.CaptureConfig.Address, cfg.CaptureConfig.Port)

	uaddr, err := net.ResolveUDPAddr("udp",
		fmt.Sprintf("%s:%d", cfg.CaptureConfig.Address, cfg.CaptureConfig.Port))
	if err != nil {
		return nil, err
	}

	s := &CaptureServer{
		Context: context.Background(),
		Config:  cfg,
		UDPAddr: uaddr,
		ChIn:    make(chan InPacket),
	}

	return s, nil
}

// ReadPacketData reads the ChIn channel and returns packet data and metadata.
// This method is from PacketDataSource interface.
func (s *CaptureServer) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	p := <-s.ChIn
	return p.Data, p.CaptureInfo, nil
}

func (s *CaptureServer) Run() error {

	conn, err := net.ListenUDP("udp", s.UDPAddr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if s.Config.CaptureConfig.DumpFile != "" {
		writer, err := NewWriter(s.Config.CaptureConfig.DumpFile)
		if err != nil {
			return err
		}
		defer writer.Flush()
		s.writer = writer
	}

	errChan := make(chan error, 1)
	buffer := make([]byte, 65536)

	// Read packets from wire and put them to input queue
	go func() {
		for {
			length, addr, readErr := conn.ReadFrom(buffer)
			if readErr != nil {
				errChan <- readErr
				return
			}
			udpAddr, readErr := net.ResolveUDPAddr("udp", addr.String())
			if readErr != nil {
				errChan <- readErr
				return
			}
			log.Debug("Received packet from %s", udpAddr)

			data := make([]byte, length)
			copy(data, buffer[:length])

			captureInfo := gopacket.CaptureInfo{
				Length: length,
				CaptureLength: length,
				Timestamp: time.Now(),
				AncillaryData: []interface{}{udpAddr},
			}

			s.ChIn <- InPacket{Data: data, CaptureInfo: captureInfo}
		}
	}()

	// Read packets from input queue and handle them properly
	go func() {
		frames := 0
		source := gopacket.NewPacketSource(s, layers.FrameLayerType)
		for packet := range source.Packets() {
			layer := packet.Layer(layers.FrameLayerType)
			if layer == nil {
				log.Error("Error while parsing frame layer: size: %d", packet.Metadata().Length)
				continue
			}
			frame := layer.(*layers.FrameLayer)
			frames++
			log.Info("Frame received: %d pmts: %d size: %d",
				frames, len(frame.PMTData), len(frame.Contents))

			if s.writer != nil {
				if _, err := s.writer.Write(frame.Contents); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	log.Info("Capturing frames on %s", s.UDPAddr)
	return <-errChan
}
