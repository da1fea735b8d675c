// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fileinfo implements the fileinfo command which prints
// information about an OSM file, either from its header or gathered by
// scanning every object in the file.
package fileinfo

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/osminfo"
	"m4o.io/osminfo/cmd/osminfo/cli"
)

var infoCmd = &cobra.Command{
	Use:   "fileinfo [<OSM file>]",
	Short: "Show information about an OSM file",
	Long: `Show information about an OSM file.  The file format and compression are
detected from the file name suffix.  Without a file argument the command reads
an uncompressed OSM XML stream from stdin.

By default only the file and header sections are shown.  With --extended the
whole file is scanned and a data section is added with object counts, largest
ids, timestamps, a checksum, and ordering information.`,
	Args: cobra.MaximumNArgs(1),
	Run:  fileinfo,
}

func init() {
	infoCmd.Flags().BoolP("json", "j", false, "output in JSON format")
	infoCmd.Flags().BoolP("extended", "e", false, "scan the whole file and show additional data")
	infoCmd.Flags().StringP("get", "g", "", "print only the value of the named variable")
	infoCmd.Flags().BoolP("show-variables", "G", false, "print the variables usable with --get")
	infoCmd.Flags().Uint16P("cpu", "c", osminfo.DefaultNCpu(), "number of CPUs to use for decoding")

	cli.RootCmd.AddCommand(infoCmd)
}

func fileinfo(cmd *cobra.Command, args []string) {
	jsonfmt, err := cmd.Flags().GetBool("json")
	if err != nil {
		log.Fatal(err)
	}

	extended, err := cmd.Flags().GetBool("extended")
	if err != nil {
		log.Fatal(err)
	}

	get, err := cmd.Flags().GetString("get")
	if err != nil {
		log.Fatal(err)
	}

	show, err := cmd.Flags().GetBool("show-variables")
	if err != nil {
		log.Fatal(err)
	}

	ncpu, err := cmd.Flags().GetUint16("cpu")
	if err != nil {
		log.Fatal(err)
	}

	if show {
		showVariables(out)
		return
	}

	if err := validateModes(get, jsonfmt); err != nil {
		log.Fatal(err)
	}

	if get != "" {
		if err := validateGet(get, extended); err != nil {
			log.Fatal(err)
		}
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}

	file := osminfo.DetectFile(name)

	var in io.ReadCloser = os.Stdin
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		in = f

		if extended && !jsonfmt && get == "" {
			in, err = cli.WrapInputFile(f)
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	output := newOutput(jsonfmt, get)

	src, err := osminfo.Open(cmd.Context(), in, file, osminfo.WithMaxCPU(ncpu))
	if err != nil {
		log.Fatal(err)
	}

	output.File(file)
	output.Header(src.Header())

	if extended {
		info := osminfo.NewAccumulator()

		for {
			e, err := src.Decode()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				log.Fatal(fmt.Errorf("unable to decode entity: %w", err))
			}

			info.Apply(e)
		}

		output.Data(src.Header(), info)
	}

	if err := src.Close(); err != nil {
		log.Fatal(err)
	}
	if err := in.Close(); err != nil {
		log.Fatal(err)
	}

	if err := output.Finish(); err != nil {
		log.Fatal(err)
	}
}
