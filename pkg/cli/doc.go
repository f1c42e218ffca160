// Package cli implements the cookbook command-line interface.
//
// # Commands
//
// units - List supported measurement units:
//
//	cookbook units [--category volume] [--format yaml|json|table]
//
// validate - Validate a recipe file:
//
//	cookbook validate pancakes.yaml
//
// Parses the file and checks every document rule. Errors name the offending
// element by path, e.g. steps[2].ingredients[0].
//
// fmt - Rewrite a recipe file in canonical form:
//
//	cookbook fmt pancakes.yaml [--write]
//
// Assigns missing ids and normalizes field order. Formatting is
// deterministic, so a second run is a no-op.
//
// show - Render a recipe file:
//
//	cookbook show pancakes.yaml [--format yaml|json|table]
//
// convert - Convert a quantity between units:
//
//	cookbook convert --value 1/2 --from cup --to mL
//
// tags - List tags across a recipe library:
//
//	cookbook tags ./recipes
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Log verbosity (debug, info, warn, error), also LOG_LEVEL env
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid arguments, parse or validation failure)
//
// The CLI uses the urfave/cli/v3 framework and delegates to the domain
// packages: pkg/recipefile for parsing, pkg/unit for conversion, pkg/library
// for directory trees, and pkg/serializer for output formatting.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/cookbook-dev/cookbook/pkg/cli.version=1.0.0'"
package cli
