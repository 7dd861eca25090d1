// Package errors turns velem failures into coded, actionable diagnostics
// for the CLI and the preview server.
//
// # Error Categories
//
//   - mount: descriptor defects found by the factory or by Mount
//   - decode: malformed descriptor documents
//   - config: velem.json problems
//   - publish: failures writing rendered output
//   - server: preview server failures
//
// # Error Codes
//
// Each error has a unique code (e.g., "E102") mapping to a short message,
// a detailed explanation and a suggestion.
//
// # Usage
//
//	err := errors.FromError(mountErr)
//	fmt.Fprintln(os.Stderr, err.Format())
//	// ERROR E102: Invalid child
//	//
//	//   page.yaml: children[0]
//	//
//	//   A child must be text, a number or an element. ...
//	//
//	//   Hint: Flatten nested lists before mounting.
package errors
