// Package harness runs conversion case files against the roman converter.
//
// A case file lists conversions with their expected output or error kind:
//
//	name: basics
//	description: Standard encoding and simple parsing
//	cases:
//	  - op: standard
//	    input: "2706"
//	    want: MMDCCVI
//	  - op: parse_int
//	    input: ""
//	    error: invalid_format
//
// The same structure can be written in CUE; .cue files are unified with a
// closed schema before decoding, so unknown ops or fields fail at load time.
//
// Run produces a Report with one CaseResult per case. AssertGolden snapshots a
// report with goldie for regression tests.
package harness
