// Package release implements the npm release lifecycle: four ordered hooks
// (pre-bump, bump, pre-publish, publish), the bump-kind prompt and validation
// logic, and the construction of the external npm command lines. All I/O is
// delegated to collaborators injected at construction.
package release

// BumpKind is the semantic-version increment category passed to npm version.
type BumpKind string

const (
	BumpPatch      BumpKind = "patch"
	BumpMinor      BumpKind = "minor"
	BumpMajor      BumpKind = "major"
	BumpPrePatch   BumpKind = "prepatch"
	BumpPreMinor   BumpKind = "preminor"
	BumpPreMajor   BumpKind = "premajor"
	BumpPreRelease BumpKind = "prerelease"
)

// baseKinds are always offered. preKinds require a configured pre-release
// identifier. Order matters: it is the order choices are presented in.
var (
	baseKinds = []BumpKind{BumpPatch, BumpMinor, BumpMajor}
	preKinds  = []BumpKind{BumpPrePatch, BumpPreMinor, BumpPreMajor, BumpPreRelease}
)

// kindDescriptions maps each kind to the prompt description shown next to it.
var kindDescriptions = map[BumpKind]string{
	BumpPatch:      "backwards-compatible bug fixes (x.y.Z)",
	BumpMinor:      "backwards-compatible features (x.Y.z)",
	BumpMajor:      "breaking changes (X.y.z)",
	BumpPrePatch:   "pre-release of the next patch version",
	BumpPreMinor:   "pre-release of the next minor version",
	BumpPreMajor:   "pre-release of the next major version",
	BumpPreRelease: "increment the current pre-release version",
}
