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

// Package cli holds the shared command line plumbing: the root command,
// logging setup, and the progress bar input wrapper.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the root of the osminfo command tree.
var RootCmd = &cobra.Command{
	Use:   "osminfo",
	Short: "Inspect OpenStreetMap data files",
	Long:  "Inspect OpenStreetMap data files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
