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

import "errors"

// ErrNotFound is returned (wrapped) when the configuration file to parse does
// not exist. The returned errors also match fs.ErrNotExist.
var ErrNotFound = errors.New("configuration file not found")

// ErrRead is returned (wrapped) when reading the configuration failed
// mid-stream. The returned error carries the underlying error too.
var ErrRead = errors.New("cannot read configuration")
