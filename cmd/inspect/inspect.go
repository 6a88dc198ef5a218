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

package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aabcompass/player/pkg/layers"
	"github.com/aabcompass/player/pkg/player"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <filename>",
		Short: "Print record headers of a PDM record file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			out := cmd.OutOrStdout()
			reader := player.NewRecordReader(file)
			for {
				record, err := reader.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				header, err := record.Header()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Record %d:\n%s", reader.Records(), header)
			}
			fmt.Fprintf(out, "Records: %d Frames: %d\n",
				reader.Records(), reader.Records()*layers.FramesPerRecord)
			return nil
		},
	}
	return cmd
}
