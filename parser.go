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
	"strings"

	"github.com/thediveo/envini/interpolate"

	log "github.com/sirupsen/logrus"
)

// state of the line parser.
type state int

const (
	stateReady   state = iota // between constructs
	stateComment              // current line is a comment, to be discarded
	stateSection              // current line is a section header
	stateKey                  // current line is a key or key=value line
	stateValue                // a value continues on the next line
)

func (s state) String() string {
	switch s {
	case stateReady:
		return "Ready"
	case stateComment:
		return "Comment"
	case stateSection:
		return "Section"
	case stateKey:
		return "Key"
	case stateValue:
		return "Value"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// parser builds a Document from lines fed to it one after another. The
// parser owns the draft of the current section; the draft gets committed to
// the document whenever the next section starts and when the input ends.
type parser struct {
	state state
	doc   *Document
	draft *Section
	vars  interpolate.Lookup // nil if not interpolating

	// the key whose value continues on following lines, and its raw
	// (uninterpolated) value text so far, without the trailing backslash.
	pendingKey string
	pendingRaw string
}

func newParser(opts *options) *parser {
	doc := NewDocument()
	doc.implicit = opts.defaultSection
	return &parser{
		state: stateReady,
		doc:   doc,
		draft: doc.draft(opts.defaultSection),
		vars:  opts.vars,
	}
}

// line processes the next raw line (without its line terminator).
func (p *parser) line(raw string) {
	trimmed := strings.TrimSpace(raw)
	for {
		if log.IsLevelEnabled(log.TraceLevel) {
			log.Trace(fmt.Sprintf("state %s, line %q", p.state, trimmed))
		}
		switch p.state {
		case stateReady:
			switch {
			case isBlank(trimmed):
				return
			case isComment(trimmed):
				p.state = stateComment
			case isSectionHeader(trimmed):
				p.state = stateSection
			default:
				p.state = stateKey
			}
		case stateComment:
			p.state = stateReady
			return
		case stateSection:
			p.switchSection(sectionName(trimmed))
			p.state = stateReady
			return
		case stateKey:
			p.keyValue(trimmed)
			return
		case stateValue:
			if isComment(trimmed) {
				// comments neither end nor contribute to a continued value.
				return
			}
			if isBlank(trimmed) {
				p.endValue()
				return
			}
			if !startsWithWhitespace(raw) {
				// not a continuation, so it's something else that we need
				// to dispatch anew.
				p.endValue()
				continue
			}
			p.continueValue(trimmed)
			return
		default:
			panic(fmt.Sprintf("unknown parser state %s", p.state))
		}
	}
}

// finish commits the current section draft and returns the parsed document.
// A value still pending continuation is taken as is.
func (p *parser) finish() *Document {
	if p.state == stateValue {
		log.Debug(fmt.Sprintf("input ends with continued value of key %q", p.pendingKey))
		p.endValue()
	}
	p.commit()
	return p.doc
}

// commit the current section draft into the document, merging with (that is,
// replacing) any existing section of the same name.
func (p *parser) commit() {
	log.Debug(fmt.Sprintf("committing section %q with %d key(s)", p.draft.Name(), p.draft.Len()))
	p.doc.Put(p.draft)
}

// switchSection commits the current section and then continues with the named
// section, which might already contain entries from an earlier block.
func (p *parser) switchSection(name string) {
	p.commit()
	p.draft = p.doc.draft(name)
}

// keyValue stores a bare key or a key=value pair, where the value might be
// continued on the following line(s).
func (p *parser) keyValue(line string) {
	key, value, hasValue := splitKeyValue(line)
	if !hasValue {
		p.draft.SetFlag(key)
		p.state = stateReady
		return
	}
	if continuationPending(value) {
		p.pendingKey = key
		p.pendingRaw = value[:len(value)-1]
		p.store(key, p.pendingRaw)
		p.state = stateValue
		return
	}
	p.store(key, value)
	p.state = stateReady
}

// continueValue appends the specified continuation line to the pending value.
func (p *parser) continueValue(line string) {
	raw := p.pendingRaw + line
	if continuationPending(raw) {
		p.pendingRaw = raw[:len(raw)-1]
		p.store(p.pendingKey, p.pendingRaw)
		return
	}
	p.store(p.pendingKey, raw)
	p.endValue()
}

func (p *parser) endValue() {
	p.pendingKey = ""
	p.pendingRaw = ""
	p.state = stateReady
}

// store the (raw) value under the specified key, interpolating placeholders as
// necessary.
func (p *parser) store(key string, value string) {
	if p.vars != nil {
		if interpolated, ok := interpolate.String(value, p.vars); ok {
			if log.IsLevelEnabled(log.TraceLevel) {
				log.Trace(fmt.Sprintf("interpolated %q: %q -> %q", key, value, interpolated))
			}
			value = interpolated
		}
	}
	p.draft.Set(key, value)
}
