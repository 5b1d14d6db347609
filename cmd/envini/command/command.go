// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package command

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	log "github.com/sirupsen/logrus"
)

const (
	envFlag            = "env"
	setFlag            = "set"
	includeFlag        = "include"
	includeSectionFlag = "include-section"
	sectionFlag        = "section"
	keyFlag            = "key"
	outputFlag         = "output"
	debugFlag          = "debug"
	traceFlag          = "trace"
)

// osExit can be replaced in tests.
var osExit = os.Exit

// successfully returns the value if there is no error, and panics otherwise.
// Use it for things that fail only because of programming errors, such as
// retrieving flag values of undefined flags.
func successfully[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// unerringly returns the value if there is no error, and otherwise logs the
// error and exits the process.
func unerringly[T any](v T, err error) T {
	if err != nil {
		log.WithError(err).Error("fatal")
		osExit(1)
	}
	return v
}

// version returns the VCS commit (shortened) from the specified build info,
// falling back to the main module version.
func version(info *debug.BuildInfo) string {
	commit := buildInfo(info, "vcs.revision")
	if commit == "" {
		return info.Main.Version
	}
	modified := ""
	if buildInfo(info, "vcs.modified") == "true" {
		modified = " (modified)"
	}
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("commit %s%s", commit, modified)
}

func buildInfo(info *debug.BuildInfo, key string) string {
	idx := slices.IndexFunc(info.Settings,
		func(setting debug.BuildSetting) bool {
			return setting.Key == key
		})
	if idx < 0 {
		return ""
	}
	return info.Settings[idx].Value
}

// Execute the envini command with the process arguments, logging to the
// specified writer. Execute exits the process in case of failure.
func Execute(w io.Writer) {
	_ = unerringly(New(w).ExecuteC())
}

// New returns a new envini root command that logs to the specified writer.
func New(w io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "envini [flags] config-file",
		Short: "envini parses INI-style configuration files, with a touch of environment",
		Long: `envini parses an INI-style configuration file and renders it as YAML, JSON,
or normalized INI. Alternatively, it prints the value of a single key.`,
		Version: `":latest"`, // sorry :p
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if w != nil {
				log.SetOutput(w)
			}
			switch {
			case successfully(cmd.Flags().GetBool(traceFlag)):
				log.SetLevel(log.TraceLevel)
			case successfully(cmd.Flags().GetBool(debugFlag)):
				log.SetLevel(log.DebugLevel)
			default:
				log.SetLevel(log.InfoLevel)
			}
			return nil
		},
		RunE: run,
	}

	rootCmd.Flags().BoolP(envFlag, "e", false,
		"substitute ${NAME} placeholders with environment variables")
	rootCmd.Flags().StringArray(setFlag, nil,
		"set variable NAME=VALUE for substitution, taking precedence over the environment")
	rootCmd.Flags().Bool(includeFlag, false,
		"also load the files listed in the include key of the include section")
	rootCmd.Flags().String(includeSectionFlag, "project",
		"name of the section with the include key")
	rootCmd.Flags().StringP(sectionFlag, "s", "",
		"only this section (defaults to \"default\" when --key is given)")
	rootCmd.Flags().StringP(keyFlag, "k", "",
		"print only the value of this key")
	rootCmd.Flags().StringP(outputFlag, "o", "yaml",
		"output format: yaml, json, or ini")
	rootCmd.Flags().Bool(debugFlag, false,
		"enable debug logging")
	rootCmd.Flags().Bool(traceFlag, false,
		"enable trace logging")

	if info, biok := debug.ReadBuildInfo(); biok {
		rootCmd.Version = version(info)
	}

	return rootCmd
}
