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
	"os"
	"strings"
)

// Lookup returns the value of a variable and whether the variable is set at
// all.
type Lookup interface {
	LookupVar(name string) (string, bool)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(name string) (string, bool)

// LookupVar returns f(name).
func (f LookupFunc) LookupVar(name string) (string, bool) { return f(name) }

// Environment looks up variables in the process environment. It never modifies
// the environment.
var Environment Lookup = LookupFunc(os.LookupEnv)

// Vars is a Lookup backed by a plain map of variable names to values.
type Vars map[string]string

// LookupVar returns the value of the named variable in this map.
func (v Vars) LookupVar(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// Chain asks its lookups in order and returns the result of the first one that
// knows the named variable, even if its value is empty.
type Chain []Lookup

// LookupVar returns the value of the named variable from the first lookup in
// the chain that has it set.
func (c Chain) LookupVar(name string) (string, bool) {
	for _, lookup := range c {
		if lookup == nil {
			continue
		}
		if value, ok := lookup.LookupVar(name); ok {
			return value, true
		}
	}
	return "", false
}

// String interpolates the placeholders in the specified value using the
// specified variable lookup. It returns the interpolated value and true if at
// least one placeholder has been substituted. Otherwise, it returns the
// original value unmodified and false.
//
// Placeholders of unset or empty variables are left in place. All occurrences
// of the same placeholder are substituted with the same value.
func String(value string, vars Lookup) (string, bool) {
	if vars == nil || !strings.Contains(value, "${") {
		return value, false
	}
	segments := parse(value)
	text, substituted := segments.Text(vars)
	if !substituted {
		return value, false
	}
	return text, true
}

// Names returns the names of the variables referenced by placeholders in the
// specified value, in order of their first appearance and without duplicates.
func Names(value string) []string {
	if !strings.Contains(value, "${") {
		return nil
	}
	names := []string{}
	seen := map[string]struct{}{}
	for _, seg := range parse(value) {
		placeholder, ok := seg.(Placeholder)
		if !ok {
			continue
		}
		if _, ok := seen[string(placeholder)]; ok {
			continue
		}
		seen[string(placeholder)] = struct{}{}
		names = append(names, string(placeholder))
	}
	return names
}
