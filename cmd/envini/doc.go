/*
envini parses INI-style configuration files, with a touch of environment.

# Usage

	envini [flags] config-file

# Flags

	    --debug                    enable debug logging
	-e, --env                      substitute ${NAME} placeholders with environment variables
	-h, --help                     help for envini
	    --include                  also load the files listed in the include key of the include section
	    --include-section string   name of the section with the include key (default "project")
	-k, --key string               print only the value of this key
	-o, --output string            output format: yaml, json, or ini (default "yaml")
	-s, --section string           only this section (defaults to "default" when --key is given)
	    --set stringArray          set variable NAME=VALUE for substitution, taking precedence over the environment
	    --trace                    enable trace logging
	-v, --version                  version for envini
*/
package main
