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
	"io/fs"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("parsing files", func() {

	It("parses a configuration file", func() {
		setenv("ENVINI_JAVA_HOME", "/opt/jdk")
		setenv("ENVINI_CATALINA_HOME", "")

		doc := Successful(ParseFile("testdata/config.ini", ResolveEnv()))
		Expect(doc.Names()).To(HaveExactElements(
			"common", DefaultSectionName, "project", `project "example"`, "runtime"))

		runtime := doc.Section("runtime")
		Expect(Value(runtime.Get("java_home"))).To(Equal("/opt/jdk"))
		Expect(Value(runtime.Get("catalina_home"))).To(Equal("${ENVINI_CATALINA_HOME}"))
		Expect(Value(runtime.Get("java_opts"))).To(Equal(
			"-XX:+HeapDumpOnOutOfMemoryError -XX:-OmitStackTraceInFastThrow"))
		Expect(Value(runtime.Get("http_port"))).To(Equal("8080"))

		Expect(Value(doc.Get("project", "include"))).To(Equal(
			"project/app3.ini , project/app4.ini"))

		example := doc.Section(`project "example"`)
		Expect(example.Len()).To(Equal(11))
		Expect(Value(example.Get("item.app2.context_path"))).To(Equal("/app2"))

		Expect(doc.Section("common").Has("cache_dir")).To(BeFalse())
	})

	It("parses without interpolation", func() {
		doc := Successful(ParseFile(filepath.Join("testdata", "project", "app3.ini")))
		Expect(Value(doc.Get(`project "app3"`, "java_home"))).To(Equal("${ENVINI_JAVA_HOME}"))
	})

	It("reports missing files", func() {
		doc, err := ParseFile("testdata/not-existing.ini")
		Expect(doc).To(BeNil())
		Expect(err).To(MatchError(ErrNotFound))
		Expect(err).To(MatchError(fs.ErrNotExist))
		Expect(err).To(MatchError(ContainSubstring("not-existing.ini")))
	})

	It("reports read errors", func() {
		doc, err := ParseFile("testdata")
		Expect(doc).To(BeNil())
		Expect(err).To(MatchError(ErrRead))
		Expect(err).NotTo(MatchError(ErrNotFound))
	})

})
