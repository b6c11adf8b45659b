// File: merger.go
// Title: HTML Merger
// Description: Implements the HTML file concatenation utility. Inputs come
//              as an explicit file list or a directory of *.html files;
//              the first file's framing lines become the shared header and
//              trailer and every file's body lines are kept grouped per
//              source file in input order.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

package merger

import (
	"path/filepath"

	amerror "github.com/Advestis/htmlmerger/core/error"
	"github.com/Advestis/htmlmerger/core/log"
	"github.com/Advestis/htmlmerger/utils/filex"
	"github.com/Advestis/htmlmerger/utils/stringx"
)

// DefaultOutputFile is used when Options leaves the output unset
const DefaultOutputFile = "merged.html"

var (
	headerPrefixes  = []string{"<html>", "<body>", "<head>"}
	trailerPrefixes = []string{"</body>", "</html>"}
)

// Options configures a Merger. Files and InputDir are mutually exclusive;
// exactly one must be given.
type Options struct {
	// Files lists the HTML files to merge, in order
	Files []string

	// InputDir names a directory whose *.html files are merged in
	// sorted order
	InputDir string

	// OutputFile receives the merged document; defaults to merged.html
	OutputFile string

	// Logger receives progress output; a silent default is used when nil
	Logger *log.Logger
}

// group holds the body lines of the files sharing one base name
type group struct {
	name  string
	lines []string
}

// Merger merges HTML files into a single document. Build one with New,
// then call Merge; Load may be called first to inspect the captured
// header, trailer and body groups before writing.
type Merger struct {
	files   []string
	output  string
	logger  *log.Logger
	header  []string
	trailer []string
	groups  []group
	index   map[string]int
	loaded  bool
}

// New validates the options and returns a ready Merger. The input set is
// fixed here: a directory is listed immediately, the output file is
// dropped from the inputs, and a missing output directory is rejected.
func New(opts Options) (*Merger, error) {
	if len(opts.Files) == 0 && opts.InputDir == "" {
		return nil, amerror.New("need to specify files or input directory").
			WithCode(amerror.CodeMissingInput).
			WithOperation("merger.New")
	}
	if len(opts.Files) > 0 && opts.InputDir != "" {
		return nil, amerror.New("can not specify both input directory and input files").
			WithCode(amerror.CodeConflictingInput).
			WithOperation("merger.New")
	}

	files := opts.Files
	if opts.InputDir != "" {
		if !filex.IsDir(opts.InputDir) {
			return nil, amerror.Newf("input directory %s not found", opts.InputDir).
				WithCode(amerror.CodeNotADirectory).
				WithDetail("input_dir", opts.InputDir).
				WithOperation("merger.New")
		}
		listed, err := filex.ListByExt(opts.InputDir, ".html")
		if err != nil {
			return nil, amerror.Wrap(err, "failed to list input directory").
				WithCode(amerror.CodeOperationFailed).
				WithDetail("input_dir", opts.InputDir).
				WithOperation("merger.New")
		}
		files = listed
	}

	output := opts.OutputFile
	if output == "" {
		output = DefaultOutputFile
	}
	if dir := filepath.Dir(output); !filex.IsDir(dir) {
		return nil, amerror.Newf("output directory %s not found", dir).
			WithCode(amerror.CodeNotADirectory).
			WithDetail("output_file", output).
			WithOperation("merger.New")
	}

	// The output never feeds itself back in on a re-run
	kept := make([]string, 0, len(files))
	for _, f := range files {
		if f == output {
			continue
		}
		kept = append(kept, f)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New().WithLevel(log.LevelError)
	}

	return &Merger{
		files:  kept,
		output: output,
		logger: logger.WithName("merger"),
		index:  map[string]int{},
	}, nil
}

// Files returns the effective input files, after directory listing and
// output exclusion
func (m *Merger) Files() []string {
	return m.files
}

// OutputFile returns the effective output path
func (m *Merger) OutputFile() string {
	return m.output
}

// Load reads every input file and splits its lines into the shared
// framing and the per-file body groups. Only the first file contributes
// header and trailer lines; framing lines of later files are dropped.
// Files sharing a base name share one body group.
func (m *Merger) Load() error {
	first := true
	for _, file := range m.files {
		lines, err := filex.ReadLines(file)
		if err != nil {
			return amerror.Wrap(err, "failed to read input file").
				WithCode(amerror.CodeOperationFailed).
				WithDetail("file", file).
				WithOperation("merger.Load")
		}

		name := filepath.Base(file)
		for _, line := range lines {
			switch {
			case stringx.HasAnyPrefix(line, headerPrefixes...):
				if first {
					m.header = append(m.header, line)
				}
			case stringx.HasAnyPrefix(line, trailerPrefixes...):
				if first {
					m.trailer = append(m.trailer, line)
				}
			default:
				m.appendBody(name, line)
			}
		}

		m.logger.Debug("loaded input file", log.Fields{
			"file":  file,
			"lines": len(lines),
		})
		first = false
	}

	m.loaded = true
	return nil
}

func (m *Merger) appendBody(name, line string) {
	i, ok := m.index[name]
	if !ok {
		i = len(m.groups)
		m.index[name] = i
		m.groups = append(m.groups, group{name: name})
	}
	m.groups[i].lines = append(m.groups[i].lines, line)
}

// Header returns the captured header lines; empty before Load
func (m *Merger) Header() []string {
	return m.header
}

// Trailer returns the captured trailer lines; empty before Load
func (m *Merger) Trailer() []string {
	return m.trailer
}

// Merge writes the merged document: header, the body groups in input
// order, trailer. Load is performed on demand. With clean set, the input
// files are deleted after a successful write.
func (m *Merger) Merge(clean bool) error {
	if !m.loaded {
		if err := m.Load(); err != nil {
			return err
		}
	}

	lines := make([]string, 0, len(m.header)+len(m.trailer))
	lines = append(lines, m.header...)
	for _, g := range m.groups {
		lines = append(lines, g.lines...)
	}
	lines = append(lines, m.trailer...)

	if err := filex.WriteLines(m.output, lines, 0644); err != nil {
		return amerror.Wrap(err, "failed to write merged output").
			WithCode(amerror.CodeOperationFailed).
			WithDetail("output_file", m.output).
			WithOperation("merger.Merge")
	}

	m.logger.Info("merged input files", log.Fields{
		"files":       len(m.files),
		"output_file": m.output,
	})

	if clean {
		return m.Clean()
	}
	return nil
}

// Clean deletes the input files; missing files are skipped
func (m *Merger) Clean() error {
	if err := filex.RemoveFiles(m.files); err != nil {
		return amerror.Wrap(err, "failed to clean input files").
			WithCode(amerror.CodeOperationFailed).
			WithOperation("merger.Clean")
	}
	m.logger.Info("removed input files", log.Fields{"files": len(m.files)})
	return nil
}
