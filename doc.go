/*
Package envini parses line-oriented, INI-style configuration files with
sections, flag keys, comments, line continuations, and optional interpolation
of environment variables.

	; comments start with a semicolon…
	# …or a hash.
	log_level = info

	[runtime]
	java_home = ${JAVA_HOME}
	java_opts = -XX:+HeapDumpOnOutOfMemoryError \
	            -XX:-OmitStackTraceInFastThrow
	enable_logfile

	[project "example"]
	alias = ex

# Sections

A section starts with a “[name]” header line and extends up to the next header
line or the end of the input. Whitespace around the name as well as a single
pair of enclosing double quotes is removed. Keys before the first header belong
to the implicit [DefaultSectionName] section. When a section header repeats a
name seen before, the keys of both blocks end up in the same section.

# Keys and Values

A “key = value” line sets the key to the value, with whitespace trimmed from
both. Only the first “=” separates key and value. A line without any “=” is a
bare key (flag) without a value. Later occurrences of a key overwrite earlier
ones. An empty value is the same as no value at all: [Section.Get] reports both
as unset, while [Section.Has] tells present keys from missing keys.

# Continuations

A value ending in a backslash continues on the next line, if that line starts
with whitespace and isn't blank. The backslash is removed and the trimmed next
line is appended without any separator. Comment lines inside a continued value
are skipped. Any other line ends the value and is then parsed as usual.

# Interpolation

With [ResolveEnv] or [WithVariables], “${NAME}” placeholders in values get
substituted; see package [github.com/thediveo/envini/interpolate] for the
details.

# Errors

Parsing is permissive and doesn't know syntax errors. [ParseFile] fails with an
error wrapping [ErrNotFound] when the file doesn't exist, and both [Parse] and
[ParseFile] fail with an error wrapping [ErrRead] on read errors.
*/
package envini
