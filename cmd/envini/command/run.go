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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thediveo/envini"
	"github.com/thediveo/envini/interpolate"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	log.Debug(fmt.Sprintf("📄  configuration file %q", path))

	var opts []envini.Option
	vars, err := variables(successfully(cmd.Flags().GetStringArray(setFlag)))
	if err != nil {
		return err
	}
	resolveEnv := successfully(cmd.Flags().GetBool(envFlag))
	switch {
	case resolveEnv:
		log.Debug("🌍  substituting environment variables")
		opts = append(opts, envini.WithVariables(interpolate.Chain{vars, interpolate.Environment}))
	case len(vars) > 0:
		opts = append(opts, envini.WithVariables(vars))
	}

	doc, err := envini.ParseFile(path, opts...)
	if err != nil {
		return err
	}
	if successfully(cmd.Flags().GetBool(includeFlag)) {
		err = include(doc, path, successfully(cmd.Flags().GetString(includeSectionFlag)))
		if err != nil {
			return err
		}
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		traceUnresolved(doc)
	}

	sectionName := successfully(cmd.Flags().GetString(sectionFlag))
	if key := successfully(cmd.Flags().GetString(keyFlag)); key != "" {
		if sectionName == "" {
			sectionName = envini.DefaultSectionName
		}
		value, err := lookup(doc, sectionName, key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
		return err
	}
	if sectionName != "" {
		section := doc.Section(sectionName)
		if section == nil {
			return fmt.Errorf("no section %q", sectionName)
		}
		doc = envini.NewDocument()
		doc.Put(section)
	}
	return render(cmd.OutOrStdout(), doc, successfully(cmd.Flags().GetString(outputFlag)))
}

// variables returns the variables from the specified list of NAME=VALUE
// assignments.
func variables(assignments []string) (interpolate.Vars, error) {
	vars := interpolate.Vars{}
	for _, assignment := range assignments {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable assignment %q, expected NAME=VALUE", assignment)
		}
		vars[name] = value
	}
	return vars, nil
}

// lookup returns the value of the key in the named section, or an error if
// there is no such section, no such key, or the key has no value.
func lookup(doc *envini.Document, sectionName string, key string) (string, error) {
	section := doc.Section(sectionName)
	if section == nil {
		return "", fmt.Errorf("no section %q", sectionName)
	}
	if !section.Has(key) {
		return "", fmt.Errorf("no key %q in section %q", key, sectionName)
	}
	value, ok := section.Get(key)
	if !ok {
		return "", fmt.Errorf("key %q in section %q has no value", key, sectionName)
	}
	return value, nil
}

// render the document in the specified output format.
func render(w io.Writer, doc *envini.Document, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc.Map()); err != nil {
			return fmt.Errorf("cannot render YAML, reason: %w", err)
		}
		return enc.Close()
	case "json":
		b, err := json.MarshalIndent(doc.Map(), "", "  ")
		if err != nil {
			return fmt.Errorf("cannot render JSON, reason: %w", err)
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case "ini":
		_, err := doc.WriteTo(w)
		return err
	}
	return errors.New("unsupported output format " + format)
}

// traceUnresolved logs all placeholders that are still left in values.
func traceUnresolved(doc *envini.Document) {
	for _, name := range doc.Names() {
		section := doc.Section(name)
		for _, key := range section.Keys() {
			value, _ := section.Get(key)
			if names := interpolate.Names(value); len(names) > 0 {
				log.Trace(fmt.Sprintf("   🧩  [%s] %s: unresolved %s",
					name, key, strings.Join(names, ", ")))
			}
		}
	}
}
