/*
Package interpolate substitutes “${NAME}” placeholders in configuration values
with the values of (environment) variables.

A placeholder consists of a “${”, a variable name, and a closing “}”:

	${JAVA_HOME}
	${catalina.home}

The variable name must start with an ASCII letter, followed by at least one
more ASCII letter, digit, underscore “_”, or dot “.”. Thus, names are at least
two characters long; “${X}” is not a placeholder but just plain text.

# Unset and Empty Variables

A placeholder whose variable is either unset or set to the empty string is left
in place as is. In contrast to shells, there is no “substitute with empty”.
Consumers can thus easily spot unresolved placeholders in their configuration
values.

# Variable Lookups

Variable values are taken from a [Lookup]. [Environment] looks up variables in
the process environment, [Vars] in a plain map, and a [Chain] asks a sequence of
lookups in order.

# Implementation Note

As in the Compose interpolation this package was derived from, placeholders are
found by a small dedicated scanner instead of regular expressions. The scanner
splits a value into [Segments] of plain text and placeholders in a single pass;
substituted variable values are never scanned again.
*/
package interpolate
