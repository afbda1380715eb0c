// Package cli implements the tellus command-line tool.
//
// # Overview
//
// tellus is operator tooling for the client version headers sent by Zilly
// apps. It answers the questions the server answers at request time: which
// header carries a platform's version, how two versions order, and which
// feature gates a given client would see.
//
// # Commands
//
// headers - List the version header per platform:
//
//	tellus headers [--format table|json|yaml]
//
// compare - Order two version strings:
//
//	tellus compare 2.1.0 V2.1.0.1
//
// Both arguments are parsed leniently (a "v" prefix and letters glued to
// digits are dropped) and the normalized forms are printed with the results.
//
// label - Parse or build a friendly label:
//
//	tellus label "Zilly Ios 2.1.0"
//	tellus label --platform web_app --version 1.4.0
//
// client - Evaluate a client version:
//
//	tellus client --platform ios --version 2.0.1 --lt 2.1.0 --requirement "~> 2.0"
//
// gates - Validate and evaluate feature gate files:
//
//	tellus gates validate gates.yaml
//	tellus gates eval --file gates.yaml --label "Zilly Android 3.1.4"
//
// serve - Run the HTTP API:
//
//	tellus serve --gates gates.yaml --port 8080
//
// # Global Flags
//
//	--format, -t     Output format: table (default), json, yaml
//	--output, -o     Output file (default: stdout)
//	--log-level      Log level (default: warn, env: LOG_LEVEL)
//
// # Build Information
//
// Version information is embedded at build time with ldflags:
//
//	go build -ldflags="-X 'github.com/zillyinc/tellus-client-version/pkg/cli.version=1.0.0'"
package cli
