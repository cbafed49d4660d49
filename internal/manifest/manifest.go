// Package manifest parses the npm package manifest (package.json). Only the
// fields the release flow needs are modeled; the manifest is never written,
// the external npm version command owns mutation.
package manifest

import (
	"encoding/json"
	"fmt"

	"golang.org/x/mod/semver"
)

// Manifest is the subset of package.json the release flow reads.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Private bool   `json:"private"`
}

// ParseError reports manifest text that was retrieved but could not be
// understood. It is distinct from an I/O read failure so operators can tell
// "file unreadable" from "file unparseable".
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes manifest data and validates its version field. path is used
// for error reporting only. Invalid JSON, a missing version, and a version
// that is not a semantic version all fail with *ParseError.
func Parse(path string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if m.Version == "" {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("missing version field")}
	}
	if !semver.IsValid("v" + m.Version) {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("version %q is not a semantic version", m.Version)}
	}
	return &m, nil
}
