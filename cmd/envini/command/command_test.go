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
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	cp "github.com/otiai10/copy"
	"github.com/sirupsen/logrus"
	"github.com/thediveo/envini"
	"github.com/thediveo/envini/interpolate"
	"github.com/thediveo/envini/test/grab"
	"gopkg.in/yaml.v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("envini command", func() {

	var configDir string
	var configPath string

	BeforeEach(func() {
		DeferCleanup(grab.Log(GinkgoWriter, logrus.InfoLevel))

		configDir = Successful(os.MkdirTemp("", "envini-test-*"))
		DeferCleanup(func() { _ = os.RemoveAll(configDir) })
		Expect(cp.Copy("../../../testdata", configDir)).To(Succeed())
		configPath = filepath.Join(configDir, "config.ini")

		setenv("ENVINI_JAVA_HOME", "/opt/jdk")
		setenv("ENVINI_CATALINA_HOME", "")
	})

	Context("helpers", func() {

		It("panics on structural problem", func() {
			Expect(func() {
				_ = successfully(func() (bool, error) { return false, errors.New("D'OH!") }())
			}).To(Panic())
			Expect(successfully(42, nil)).To(Equal(42))
		})

		It("logs errors and exits", func() {
			oldOsExit := osExit
			defer func() { osExit = oldOsExit }()
			osExit = func(code int) { panic("D'OH!") }

			var buff strings.Builder
			defer grab.Log(&buff, logrus.InfoLevel)()
			Expect(func() {
				_ = unerringly(func() (bool, error) { return false, errors.New("D'OH!!!") }())
			}).To(PanicWith("D'OH!"))
			Expect(buff.String()).To(MatchRegexp(`"error":"D'OH!!!","level":"error","msg":"fatal"`))
		})

		It("parses variable assignments", func() {
			Expect(variables([]string{"FOO=bar", "EMPTY=", "EQ=a=b"})).To(Equal(
				interpolate.Vars{"FOO": "bar", "EMPTY": "", "EQ": "a=b"}))
			Expect(variables([]string{"FOO"})).Error().To(HaveOccurred())
			Expect(variables([]string{"=bar"})).Error().To(HaveOccurred())
		})

	})

	It("has a version", func() {
		Expect(New(nil).Version).NotTo(BeEmpty())
	})

	DescribeTable("versions from build info",
		func(settings []debug.BuildSetting, expected string) {
			info := &debug.BuildInfo{
				Main:     debug.Module{Version: "v1.2.3"},
				Settings: settings,
			}
			Expect(version(info)).To(Equal(expected))
		},
		Entry("module version", nil, "v1.2.3"),
		Entry("long revision", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
		}, "commit 01234567"),
		Entry("short revision", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc"},
			{Key: "vcs.modified", Value: "true"},
		}, "commit abc (modified)"),
	)

	It("renders YAML", func() {
		out := Successful(execute("-e", configPath))
		var doc map[string]map[string]*string
		Expect(yaml.Unmarshal([]byte(out), &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("runtime", SatisfyAll(
			HaveKeyWithValue("java_home", HaveValue(Equal("/opt/jdk"))),
			HaveKeyWithValue("catalina_home", HaveValue(Equal("${ENVINI_CATALINA_HOME}"))),
			HaveKeyWithValue("http_port", HaveValue(Equal("8080"))),
		)))
		Expect(doc).To(HaveKeyWithValue(envini.DefaultSectionName, BeEmpty()))
		Expect(doc).NotTo(HaveKey(`project "app3"`))
	})

	It("renders JSON", func() {
		out := Successful(execute("-o", "json", configPath))
		var doc map[string]map[string]*string
		Expect(json.Unmarshal([]byte(out), &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("runtime",
			HaveKeyWithValue("java_home", HaveValue(Equal("${ENVINI_JAVA_HOME}")))))
	})

	It("renders INI", func() {
		out := Successful(execute("--output", "ini", configPath))
		reparsed := Successful(envini.Parse(strings.NewReader(out)))
		orig := Successful(envini.ParseFile(configPath))
		Expect(reparsed.Map()).To(Equal(orig.Map()))
	})

	It("renders a single section", func() {
		out := Successful(execute("-o", "ini", "-s", "common", configPath))
		Expect(out).To(Equal("[common]\nlog_level = info\n"))

		Expect(execute("-s", "nada", configPath)).Error().To(
			MatchError(`no section "nada"`))
	})

	It("rejects unknown output formats", func() {
		Expect(execute("-o", "xml", configPath)).Error().To(
			MatchError(ContainSubstring("unsupported output format xml")))
	})

	Context("looking up values", func() {

		It("prints a value", func() {
			Expect(execute("-s", "runtime", "-k", "http_port", configPath)).To(Equal("8080\n"))
			Expect(execute("-e", "-s", "runtime", "-k", "java_home", configPath)).To(Equal("/opt/jdk\n"))
		})

		It("defaults to the default section", func() {
			path := filepath.Join(configDir, "flat.ini")
			Expect(os.WriteFile(path, []byte("foo = bar\nflag\n"), 0644)).To(Succeed())
			Expect(execute("-k", "foo", path)).To(Equal("bar\n"))
			Expect(execute("-k", "flag", path)).Error().To(
				MatchError(`key "flag" in section "default" has no value`))
		})

		It("reports missing sections and keys", func() {
			Expect(execute("-s", "nada", "-k", "foo", configPath)).Error().To(
				MatchError(`no section "nada"`))
			Expect(execute("-s", "runtime", "-k", "nada", configPath)).Error().To(
				MatchError(`no key "nada" in section "runtime"`))
		})

		It("prefers variables set on the command line", func() {
			Expect(execute("-e", "--set", "ENVINI_JAVA_HOME=/usr/lib/jvm",
				"-s", "runtime", "-k", "java_home", configPath)).To(Equal("/usr/lib/jvm\n"))
			Expect(execute("--set", "ENVINI_CATALINA_HOME=/opt/tomcat",
				"-s", "runtime", "-k", "catalina_home", configPath)).To(Equal("/opt/tomcat\n"))
			Expect(execute("--set", "ENVINI_CATALINA_HOME=/opt/tomcat",
				"-s", "runtime", "-k", "java_home", configPath)).To(Equal("${ENVINI_JAVA_HOME}\n"))
		})

		It("rejects invalid variable assignments", func() {
			Expect(execute("--set", "=foo", configPath)).Error().To(
				MatchError(ContainSubstring("invalid variable assignment")))
		})

	})

	Context("including", func() {

		It("includes projects", func() {
			out := Successful(execute("-e", "--include", "-o", "json", configPath))
			var doc map[string]map[string]*string
			Expect(json.Unmarshal([]byte(out), &doc)).To(Succeed())
			Expect(doc).To(HaveKey(`project "example"`))
			Expect(doc).To(HaveKeyWithValue(`project "app3"`,
				HaveKeyWithValue("java_home", HaveValue(Equal("${ENVINI_JAVA_HOME}")))))
			Expect(doc).To(HaveKeyWithValue(`project "app4"`,
				HaveKeyWithValue("alias", HaveValue(Equal("a4")))))
			Expect(doc).To(HaveKeyWithValue(`project "app5"`,
				HaveKeyWithValue("debug", BeNil())))
		})

		It("ignores missing include sections and keys", func() {
			Expect(execute("--include", "--include-section", "nada", "-o", "ini", configPath)).
				NotTo(ContainSubstring(`[project "app3"]`))
			Expect(execute("--include", "--include-section", "common", "-o", "ini", configPath)).
				NotTo(ContainSubstring(`[project "app3"]`))
		})

		It("ignores default sections of included files", func() {
			Expect(os.WriteFile(filepath.Join(configDir, "base.ini"), []byte(
				"[project]\ninclude = extra.ini\n"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(configDir, "extra.ini"), []byte(
				"stray = 1\n[extra]\nfoo = bar\n"), 0644)).To(Succeed())

			var buff strings.Builder
			defer grab.Log(&buff, logrus.InfoLevel)()
			out := Successful(executeLogging(&buff, "--include", "-o", "ini",
				filepath.Join(configDir, "base.ini")))
			Expect(out).To(Equal("[extra]\nfoo = bar\n\n[project]\ninclude = extra.ini\n"))
			Expect(buff.String()).To(ContainSubstring("ignoring 1 key(s) outside sections"))
		})

		It("rejects duplicate sections", func() {
			Expect(os.WriteFile(filepath.Join(configDir, "project", "dup.ini"), []byte(
				"[project \"example\"]\nalias = dup\n"), 0644)).To(Succeed())
			path := filepath.Join(configDir, "dup.ini")
			Expect(os.WriteFile(path, []byte(
				"[project]\ninclude = project\\dup.ini\n[project \"example\"]\n"), 0644)).To(Succeed())
			Expect(execute("--include", path)).Error().To(
				MatchError(`duplicate section "project \"example\"" included from "project\\dup.ini"`))
		})

		It("reports missing include files", func() {
			Expect(os.Remove(filepath.Join(configDir, "project", "app4.ini"))).To(Succeed())
			Expect(execute("--include", configPath)).Error().To(
				MatchError(envini.ErrNotFound))
		})

	})

	It("reports missing configuration files", func() {
		Expect(execute(filepath.Join(configDir, "nada.ini"))).Error().To(
			MatchError(envini.ErrNotFound))
	})

	It("logs unresolved placeholders when tracing", func() {
		var buff strings.Builder
		defer grab.Log(&buff, logrus.InfoLevel)()
		Expect(executeLogging(&buff, "--trace", "-e", configPath)).Error().NotTo(HaveOccurred())
		Expect(buff.String()).To(ContainSubstring("[runtime] catalina_home: unresolved ENVINI_CATALINA_HOME"))
		Expect(buff.String()).NotTo(ContainSubstring("java_home: unresolved"))
	})

})

func setenv(name, value string) {
	GinkgoHelper()
	Expect(os.Setenv(name, value)).To(Succeed())
	DeferCleanup(func() { _ = os.Unsetenv(name) })
}

// execute a new envini root command with the specified arguments, returning
// its standard output.
func execute(args ...string) (string, error) {
	return executeLogging(GinkgoWriter, args...)
}

func executeLogging(logw io.Writer, args ...string) (string, error) {
	var out strings.Builder
	rootCmd := New(logw)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
