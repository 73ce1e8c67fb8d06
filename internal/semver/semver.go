// Package semver implements the three-component version model used by
// versync: exactly major.minor.patch, all non-negative integers, no
// prerelease or build suffixes.
package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	modsemver "golang.org/x/mod/semver"
)

var (
	// ErrInvalidFormat is returned when a version string does not have the
	// exact X.Y.Z shape.
	ErrInvalidFormat = errors.New("invalid version format")
	// ErrInvalidBumpKind is returned for an unrecognized bump type argument.
	ErrInvalidBumpKind = errors.New("invalid bump type")
)

// BumpKind selects which version component is incremented.
type BumpKind string

const (
	BumpPatch BumpKind = "patch"
	BumpMinor BumpKind = "minor"
	BumpMajor BumpKind = "major"
)

func (k BumpKind) String() string { return string(k) }

// ParseBumpKind maps a CLI argument to a BumpKind. An empty argument selects
// the patch bump.
func ParseBumpKind(s string) (BumpKind, error) {
	switch s {
	case "":
		return BumpPatch, nil
	case "patch", "minor", "major":
		return BumpKind(s), nil
	default:
		return "", fmt.Errorf("%w: %s (expected patch|minor|major)", ErrInvalidBumpKind, s)
	}
}

// Version is a semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse reads a version of the exact form "X.Y.Z" where X, Y and Z are
// non-negative base-10 integers. Surrounding whitespace is ignored.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q (expected X.Y.Z)", ErrInvalidFormat, trimmed)
	}
	var nums [3]int
	for i, p := range parts {
		// ParseUint rejects signs, so "-1" and "+1" both fail here.
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q (expected X.Y.Z)", ErrInvalidFormat, trimmed)
		}
		nums[i] = int(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the successor of v under the given bump rule. Lower-order
// components reset to zero.
func (v Version) Bump(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// Compare orders a against b under semver precedence: -1 if a < b, 0 if
// equal, +1 if a > b.
func Compare(a, b Version) int {
	return modsemver.Compare("v"+a.String(), "v"+b.String())
}
