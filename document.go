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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultSectionName is the name of the implicit section that receives all
// keys appearing before the first section header.
const DefaultSectionName = "default"

// Section is a named group of keys, where each key either has a (non-empty)
// value or no value at all.
type Section struct {
	name    string
	entries map[string]*string
}

// NewSection returns a new and empty Section with the specified name.
func NewSection(name string) *Section {
	return &Section{
		name:    name,
		entries: map[string]*string{},
	}
}

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// Get returns the value of the specified key and true. It returns "" and false
// if either the key is missing or the key has no value.
func (s *Section) Get(key string) (string, bool) {
	value := s.entries[key]
	if value == nil {
		return "", false
	}
	return *value, true
}

// Has reports whether the specified key is present, regardless of it having a
// value or not.
func (s *Section) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Set the value of the specified key, replacing any previous value. An empty
// value is stored as “no value”, exactly like a bare key.
func (s *Section) Set(key string, value string) {
	if value == "" {
		s.entries[key] = nil
		return
	}
	s.entries[key] = &value
}

// SetFlag sets the specified key without a value.
func (s *Section) SetFlag(key string) {
	s.entries[key] = nil
}

// Len returns the number of keys in this section.
func (s *Section) Len() int { return len(s.entries) }

// Keys returns the keys of this section in lexical order.
func (s *Section) Keys() []string {
	keys := maps.Keys(s.entries)
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the entries of this section, where keys without a
// value map to nil.
func (s *Section) Map() map[string]*string {
	m := make(map[string]*string, len(s.entries))
	for key, value := range s.entries {
		if value == nil {
			m[key] = nil
			continue
		}
		v := *value
		m[key] = &v
	}
	return m
}

// clone returns an independent copy of this section.
func (s *Section) clone() *Section {
	return &Section{
		name:    s.name,
		entries: s.Map(),
	}
}

// Document is a parsed configuration, mapping section names to their
// sections. Section names are unique.
type Document struct {
	sections map[string]*Section
	implicit string // section receiving keys before the first header
}

// NewDocument returns a new Document without any sections.
func NewDocument() *Document {
	return &Document{
		sections: map[string]*Section{},
		implicit: DefaultSectionName,
	}
}

// DefaultSection returns the name of the section receiving the keys found
// before the first section header; usually this is [DefaultSectionName].
func (d *Document) DefaultSection() string { return d.implicit }

// Has reports whether this document contains a section with the specified
// name.
func (d *Document) Has(name string) bool {
	_, ok := d.sections[name]
	return ok
}

// Section returns the section with the specified name, or nil if there is no
// such section.
func (d *Document) Section(name string) *Section {
	return d.sections[name]
}

// Get is a convenience for looking up the value of a key in a named section.
func (d *Document) Get(name string, key string) (string, bool) {
	section := d.sections[name]
	if section == nil {
		return "", false
	}
	return section.Get(key)
}

// Put stores the specified section, replacing any existing section of the
// same name.
func (d *Document) Put(s *Section) {
	d.sections[s.name] = s
}

// Len returns the number of sections in this document.
func (d *Document) Len() int { return len(d.sections) }

// Names returns the section names in lexical order.
func (d *Document) Names() []string {
	names := maps.Keys(d.sections)
	slices.Sort(names)
	return names
}

// Map returns a copy of the document as a map of section names to key-value
// maps. Keys without a value map to nil.
func (d *Document) Map() map[string]map[string]*string {
	m := make(map[string]map[string]*string, len(d.sections))
	for name, section := range d.sections {
		m[name] = section.Map()
	}
	return m
}

// draft returns an independent working copy of the named section, preserving
// any entries the section already has in this document.
func (d *Document) draft(name string) *Section {
	if section, ok := d.sections[name]; ok {
		return section.clone()
	}
	return NewSection(name)
}
