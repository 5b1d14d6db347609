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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/thediveo/envini/interpolate"

	log "github.com/sirupsen/logrus"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	vars           interpolate.Lookup
	defaultSection string
}

// ResolveEnv substitutes “${NAME}” placeholders in values with the values of
// the corresponding environment variables.
func ResolveEnv() Option {
	return WithVariables(interpolate.Environment)
}

// WithEnv substitutes placeholders with environment variable values only if
// resolve is true.
func WithEnv(resolve bool) Option {
	if !resolve {
		return WithVariables(nil)
	}
	return ResolveEnv()
}

// WithVariables substitutes placeholders in values using the specified
// variable lookup instead of the process environment. A nil lookup switches
// interpolation off.
func WithVariables(vars interpolate.Lookup) Option {
	return func(o *options) {
		o.vars = vars
	}
}

// WithDefaultSection sets the name of the implicit section that receives the
// keys before the first section header, instead of DefaultSectionName.
func WithDefaultSection(name string) Option {
	return func(o *options) {
		o.defaultSection = name
	}
}

// Parse reads the configuration from the specified reader until EOF and
// returns the parsed document. Parsing is permissive, so the only errors are
// read errors, which wrap ErrRead. No document is returned in case of errors.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	o := options{
		defaultSection: DefaultSectionName,
	}
	for _, opt := range opts {
		opt(&o)
	}
	p := newParser(&o)
	br := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w, line %d, reason: %w", ErrRead, lineno, err)
		}
		if line != "" {
			p.line(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err != nil {
			break
		}
	}
	return p.finish(), nil
}

// ParseFile reads the configuration from the file with the specified path and
// returns the parsed document. If the file doesn't exist, the error wraps
// ErrNotFound; errors while reading wrap ErrRead.
func ParseFile(path string, opts ...Option) (*Document, error) {
	log.Debug(fmt.Sprintf("parsing configuration file %q", path))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q, reason: %w", ErrNotFound, path, err)
		}
		return nil, fmt.Errorf("%w %q, reason: %w", ErrRead, path, err)
	}
	defer f.Close()
	doc, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q, reason: %w", path, err)
	}
	return doc, nil
}
