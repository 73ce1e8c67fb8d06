// Package syncer implements the version synchronizer: it bumps the canonical
// version file and mirrors the new version into the dependent manifests that
// are present.
package syncer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/versync-dev/versync/internal/config"
	"github.com/versync-dev/versync/internal/semver"
)

// ErrVersionFileMissing is returned when the canonical version file does not
// exist. Unlike dependent files, the canonical file is required.
var ErrVersionFileMissing = errors.New("version file not found")

// Patterns locating the embedded version field inside a dependent file. Only
// the first match is rewritten; dependency tables further down keep their own
// version strings.
var (
	jsonVersionRe = regexp.MustCompile(`"version"\s*:\s*"[^"]*"`)
	tomlVersionRe = regexp.MustCompile(`(?m)^version\s*=\s*"[^"]*"`)
)

// Result describes one completed (or simulated) sync run.
type Result struct {
	Old  semver.Version
	New  semver.Version
	Kind semver.BumpKind
	// Updated lists the dependent files that were rewritten, or that would
	// be on a dry run, relative to the project root.
	Updated []string
}

// Synchronizer performs a single linear pass: read canonical version, bump,
// write back, rewrite dependents. There is no rollback; a write failure after
// the canonical file is updated leaves a mixed-version state.
type Synchronizer struct {
	cfg    config.SyncConfig
	logger *zap.Logger
}

// New returns a Synchronizer for the given sync configuration. A nil logger
// disables logging.
func New(cfg config.SyncConfig, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{cfg: cfg, logger: logger}
}

// Run bumps the canonical version and rewrites every dependent file that
// exists. Dependent files that are absent are skipped silently.
func (s *Synchronizer) Run(kind semver.BumpKind) (*Result, error) {
	return s.run(kind, false)
}

// DryRun computes the same result as Run without writing anything.
func (s *Synchronizer) DryRun(kind semver.BumpKind) (*Result, error) {
	return s.run(kind, true)
}

func (s *Synchronizer) run(kind semver.BumpKind, dry bool) (*Result, error) {
	versionPath := filepath.Join(s.cfg.Root, s.cfg.VersionFile)

	data, err := os.ReadFile(versionPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrVersionFileMissing, versionPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", versionPath, err)
	}

	current, err := semver.Parse(string(data))
	if err != nil {
		return nil, err
	}

	next := current.Bump(kind)
	if semver.Compare(next, current) <= 0 {
		return nil, fmt.Errorf("bump %s did not advance version %s", kind, current)
	}

	s.logger.Info("bumping version",
		zap.Stringer("old", current),
		zap.Stringer("new", next),
		zap.String("bump", kind.String()),
		zap.Bool("dry_run", dry),
	)

	if !dry {
		if err := os.WriteFile(versionPath, []byte(next.String()), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", versionPath, err)
		}
	}

	res := &Result{Old: current, New: next, Kind: kind}
	for _, target := range s.cfg.Targets {
		changed, err := s.syncTarget(target, next, dry)
		if err != nil {
			return nil, err
		}
		if changed {
			res.Updated = append(res.Updated, target.Path)
		}
	}
	return res, nil
}

// syncTarget rewrites the first embedded version field in the target file,
// leaving every other byte untouched. A missing target is not an error.
func (s *Synchronizer) syncTarget(t config.TargetConfig, next semver.Version, dry bool) (bool, error) {
	path := filepath.Join(s.cfg.Root, t.Path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("dependent file absent, skipping", zap.String("path", path))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	var re *regexp.Regexp
	var replacement string
	switch t.Format {
	case config.FormatJSON:
		re = jsonVersionRe
		replacement = fmt.Sprintf(`"version": %q`, next.String())
	case config.FormatTOML:
		re = tomlVersionRe
		replacement = fmt.Sprintf(`version = %q`, next.String())
	default:
		return false, fmt.Errorf("unknown target format %q for %s", t.Format, t.Path)
	}

	loc := re.FindIndex(data)
	if loc == nil {
		s.logger.Warn("no version field found in dependent file", zap.String("path", path))
		return false, nil
	}

	if dry {
		return true, nil
	}

	out := make([]byte, 0, len(data)+len(replacement))
	out = append(out, data[:loc[0]]...)
	out = append(out, replacement...)
	out = append(out, data[loc[1]:]...)

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	s.logger.Info("updated dependent file", zap.String("path", path))
	return true, nil
}
