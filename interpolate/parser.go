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

package interpolate

import (
	"strings"
)

// Segment produces plain text upon request with its placeholder (if any)
// replaced by the variable value.
type Segment interface {
	Text(vars Lookup) (string, bool)
}

// Segments is a slice of Segment-implementing objects that produce plain text
// upon request while doing variable substitutions.
type Segments []Segment

// Text returns the plain text from the slice of segments, substituting variable
// values as necessary. It additionally reports whether any substitution took
// place. Each variable is looked up only once, so all placeholders of the same
// variable get the same value.
func (segs Segments) Text(vars Lookup) (string, bool) {
	if vars != nil {
		vars = &onceLookup{lookup: vars, values: map[string]lookupResult{}}
	}
	var text strings.Builder
	substituted := false
	for _, seg := range segs {
		segtext, ok := seg.Text(vars)
		text.WriteString(segtext)
		substituted = substituted || ok
	}
	return text.String(), substituted
}

type lookupResult struct {
	value string
	ok    bool
}

// onceLookup remembers the results of the lookups it has passed on.
type onceLookup struct {
	lookup Lookup
	values map[string]lookupResult
}

func (l *onceLookup) LookupVar(name string) (string, bool) {
	if result, ok := l.values[name]; ok {
		return result.value, result.ok
	}
	value, ok := l.lookup.LookupVar(name)
	l.values[name] = lookupResult{value: value, ok: ok}
	return value, ok
}

// PlainText is just what it says on the tin: plain text, no substitutes. In
// these days, we might call it organic, authentic, whatever.
type PlainText string

// Text returns plain text without any substitutions
func (pt PlainText) Text(Lookup) (string, bool) {
	return string(pt), false
}

// Placeholder represents a “${NAME}” placeholder for the named variable.
type Placeholder string

// Text returns the value of the variable if it is set and non-empty; otherwise,
// it returns the placeholder itself.
func (p Placeholder) Text(vars Lookup) (string, bool) {
	if vars != nil {
		if value, ok := vars.LookupVar(string(p)); ok && value != "" {
			return value, true
		}
	}
	return p.String(), false
}

// String returns the placeholder in its “${NAME}” source form.
func (p Placeholder) String() string {
	return "${" + string(p) + "}"
}

// parse the specified string into a list of Segment objects. Anything that
// isn't a well-formed placeholder is plain text, so parsing cannot fail.
func parse(s string) Segments {
	segments := Segments{}
	var text strings.Builder
	for idx := 0; idx < len(s); idx++ {
		if s[idx] == '$' && idx+1 < len(s) && s[idx+1] == '{' {
			name := parseName(s[idx+2:])
			end := idx + 2 + len(name)
			if name != "" && end < len(s) && s[end] == '}' {
				if text.Len() > 0 {
					segments = append(segments, PlainText(text.String()))
					text.Reset()
				}
				segments = append(segments, Placeholder(name))
				idx = end
				continue
			}
		}
		text.WriteByte(s[idx])
	}
	if text.Len() != 0 {
		segments = append(segments, PlainText(text.String()))
	}
	return segments
}

// parseName returns the variable name at the beginning of the specified string
// s; if the name is "" then no valid name could be found. A valid name starts
// with a letter, followed by at least one letter, digit, underscore or dot.
func parseName(s string) string {
	idx := 0
	for ; idx < len(s); idx++ {
		ch := s[idx]
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
			continue
		}
		if idx > 0 && (ch >= '0' && ch <= '9' || ch == '_' || ch == '.') {
			continue
		}
		break
	}
	if idx < 2 {
		return ""
	}
	return s[:idx]
}
