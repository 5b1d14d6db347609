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
	"path/filepath"
	"strings"

	"github.com/thediveo/envini"

	log "github.com/sirupsen/logrus"
)

// includeKey names the key listing the files to include, separated by commas.
const includeKey = "include"

// include loads the files listed in the include key of the named section and
// adds their sections to the specified document. Relative file paths are
// relative to the directory of the including file. Included files are never
// interpolated, their default sections are ignored, and including a section
// that already exists is an error.
func include(doc *envini.Document, path string, sectionName string) error {
	section := doc.Section(sectionName)
	if section == nil {
		log.Debug(fmt.Sprintf("no section %q, so no includes", sectionName))
		return nil
	}
	includes, ok := section.Get(includeKey)
	if !ok {
		log.Debug(fmt.Sprintf("no includes in section %q", sectionName))
		return nil
	}
	dir := filepath.Dir(path)
	for _, file := range strings.Split(includes, ",") {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}
		includePath := filepath.FromSlash(strings.ReplaceAll(file, `\`, "/"))
		if !filepath.IsAbs(includePath) {
			includePath = filepath.Join(dir, includePath)
		}
		log.Info(fmt.Sprintf("📎  including %q", includePath))
		included, err := envini.ParseFile(includePath)
		if err != nil {
			return fmt.Errorf("cannot include %q, reason: %w", file, err)
		}
		for _, name := range included.Names() {
			if name == envini.DefaultSectionName {
				if n := included.Section(name).Len(); n > 0 {
					log.Warn(fmt.Sprintf("ignoring %d key(s) outside sections in %q", n, includePath))
				}
				continue
			}
			if doc.Has(name) {
				return fmt.Errorf("duplicate section %q included from %q", name, file)
			}
			log.Debug(fmt.Sprintf("   ➕  section %q", name))
			doc.Put(included.Section(name))
		}
	}
	return nil
}
