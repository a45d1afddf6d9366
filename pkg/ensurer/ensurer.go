package ensurer

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/siyuan-infoblox/visual-editor-imports/pkg/diff"
	"github.com/siyuan-infoblox/visual-editor-imports/pkg/errors"
	"github.com/siyuan-infoblox/visual-editor-imports/pkg/utils"
)

// Mode selects what happens to a rewritten file
type Mode int

const (
	ModeWrite  Mode = iota // overwrite the file
	ModeDryRun             // print a diff, leave the file alone
	ModeCheck              // report files that would change
)

type EnsurerConfig struct {
	Helper         string       // identifier whose usage requires the import
	BindingsModule string       // module path relative to the working directory
	Mode           Mode         // write, dry-run or check
	Out            io.Writer    // destination for dry-run diffs
	Logger         *slog.Logger // optional, discards when nil
}

// Result describes what ProcessFile did to one file
type Result struct {
	Path       string
	UsesHelper bool // false means the file was left untouched
	Inserted   bool // a new import line was added
	Changed    bool // the rewritten text differs from the original
	Written    bool
}

// Ensurer adds and positions the helper import in component sources
type Ensurer struct {
	config EnsurerConfig
	logger *slog.Logger
}

// New creates an Ensurer, filling unset config fields with defaults
func New(config EnsurerConfig) *Ensurer {
	if config.Helper == "" {
		config.Helper = DefaultHelper
	}
	if config.BindingsModule == "" {
		config.BindingsModule = DefaultBindingsModule
	}
	if config.Out == nil {
		config.Out = io.Discard
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Ensurer{
		config: config,
		logger: logger,
	}
}

// Ensure applies the import rules to lines of a file located in dir. It
// reports whether a new import line was inserted.
func (e *Ensurer) Ensure(lines []string, dir string) ([]string, bool, error) {
	inserted := false
	if findHelperImport(lines, e.config.Helper) < 0 {
		specifier, err := utils.ModuleSpecifier(dir, e.config.BindingsModule)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveModule, err)
		}
		lines = InsertImport(lines, BuildImportLine(e.config.Helper, specifier))
		inserted = true
	}
	return NormalizeImportPosition(lines, e.config.Helper), inserted, nil
}

// ProcessFile ensures the helper import in a single file. Files that never
// mention the helper are not written.
func (e *Ensurer) ProcessFile(path string) (Result, error) {
	res := Result{Path: path}

	lines, err := utils.ReadLines(path)
	if err != nil {
		return res, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToReadFile, path, err)
	}

	if !usesHelper(lines, e.config.Helper) {
		e.logger.Debug(errors.LogMsgSkipped, "path", path)
		return res, nil
	}
	res.UsesHelper = true

	updated, inserted, err := e.Ensure(lines, filepath.Dir(path))
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	res.Inserted = inserted

	before := strings.Join(lines, "\n")
	after := strings.Join(updated, "\n")
	res.Changed = before != after

	switch e.config.Mode {
	case ModeDryRun:
		if _, err := diff.Render(e.config.Out, path, before, after); err != nil {
			return res, fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderDiff, err)
		}
	case ModeCheck:
		if res.Changed {
			e.logger.Warn(errors.LogMsgNeedsUpdate, "path", path)
		}
	default:
		if err := utils.WriteLines(path, updated); err != nil {
			return res, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToWriteFile, path, err)
		}
		res.Written = true
	}

	e.logger.Debug(errors.LogMsgProcessed,
		"path", path,
		"inserted", res.Inserted,
		"changed", res.Changed,
		"written", res.Written,
		"diff", diff.Summary(before, after),
	)
	return res, nil
}

// ProcessFiles processes paths in order and stops at the first error
func (e *Ensurer) ProcessFiles(paths []string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		res, err := e.ProcessFile(path)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, e.checkResults(results)
}

// ProcessPaths is ProcessFiles with directory arguments expanded into the
// source files below them. Each argument is finished before the next is
// looked at.
func (e *Ensurer) ProcessPaths(args []string) ([]Result, error) {
	var results []Result
	for _, arg := range args {
		paths, err := e.expand(arg)
		if err != nil {
			return results, err
		}
		for _, path := range paths {
			res, err := e.ProcessFile(path)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}
	return results, e.checkResults(results)
}

// expand returns the files an argument stands for. Paths that cannot be
// stat'ed are returned as-is so the read reports the error.
func (e *Ensurer) expand(arg string) ([]string, error) {
	isDir, err := utils.IsDirectory(arg)
	if err != nil || !isDir {
		return []string{arg}, nil
	}

	found, err := utils.FindSourceFiles(arg)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToFindFiles, arg, err)
	}
	e.logger.Info(errors.LogMsgFoundFiles, "dir", arg, "count", len(found))
	return found, nil
}

func (e *Ensurer) checkResults(results []Result) error {
	if e.config.Mode != ModeCheck {
		return nil
	}
	pending := 0
	for _, res := range results {
		if res.Changed {
			pending++
		}
	}
	if pending > 0 {
		return fmt.Errorf("%w: %d", errors.ErrFilesNeedUpdate, pending)
	}
	return nil
}
