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

package envini

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes this document in its textual configuration format to the
// specified writer, returning the number of bytes written. The default section
// comes first, followed by all other sections in lexical order; the keys of a
// section are written in lexical order too. All sections, including the
// default section, get a header, so that the default section keeps its name
// when parsed again. An empty default section is left out. Parsing the output
// yields an equal document, unless a value itself ends in a backslash.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var text strings.Builder
	names := d.Names()
	if section := d.sections[d.implicit]; section != nil && section.Len() > 0 {
		writeSection(&text, section)
	}
	for _, name := range names {
		if name == d.implicit {
			continue
		}
		if text.Len() > 0 {
			text.WriteByte('\n')
		}
		writeSection(&text, d.sections[name])
	}
	n, err := io.WriteString(w, text.String())
	if err != nil {
		return int64(n), fmt.Errorf("cannot write configuration, reason: %w", err)
	}
	return int64(n), nil
}

func writeSection(text *strings.Builder, section *Section) {
	name := section.Name()
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		// protect the quotes from getting stripped when parsing again.
		name = `"` + name + `"`
	}
	text.WriteString("[" + name + "]\n")
	for _, key := range section.Keys() {
		value, ok := section.Get(key)
		switch {
		case ok:
			text.WriteString(key + " = " + value + "\n")
		case key == "":
			text.WriteString("=\n")
		default:
			text.WriteString(key + "\n")
		}
	}
}

// Encode writes the specified document in its textual configuration format to
// the specified writer.
func Encode(w io.Writer, doc *Document) error {
	_, err := doc.WriteTo(w)
	return err
}
