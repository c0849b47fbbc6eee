// Package hcl loads quote jobs from HCL job files.
//
//	job "fleet-van-1" {
//	  vehicle       = "cargo_van"
//	  wrap_type     = "commercial_sides"
//	  waste_percent = 15
//
//	  complexity {
//	    rivets = true
//	  }
//
//	  pricing {
//	    mode    = "markup"
//	    percent = 150
//	  }
//	}
//
// Anything a job leaves out comes from the loader's defaults.
package hcl

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"wrapquote/core/quote"
	"wrapquote/internal/errors"
)

// Loader parses job files
type Loader struct {
	defaults quote.Job
}

// NewLoader creates a loader that fills omitted values from defaults
func NewLoader(defaults quote.Job) *Loader {
	return &Loader{defaults: defaults}
}

// LoadFiles parses every file in order. Job names must be unique across all of them.
func (l *Loader) LoadFiles(paths ...string) ([]quote.Job, error) {
	var jobs []quote.Job
	seen := make(map[string]string)

	parser := hclparse.NewParser()
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeNotFound, err, "failed to read job file %s", path)
		}

		fileJobs, err := l.parse(parser, src, path)
		if err != nil {
			return nil, err
		}
		for _, job := range fileJobs {
			if prev, dup := seen[job.Name]; dup {
				return nil, errors.Newf(errors.TypeInput, "duplicate job %q in %s, first defined in %s", job.Name, path, prev).
					WithContext("file", path)
			}
			seen[job.Name] = path
		}
		jobs = append(jobs, fileJobs...)
	}
	return jobs, nil
}

// Parse decodes the jobs in one in-memory file
func (l *Loader) Parse(src []byte, filename string) ([]quote.Job, error) {
	jobs, err := l.parse(hclparse.NewParser(), src, filename)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		if seen[job.Name] {
			return nil, errors.Newf(errors.TypeInput, "duplicate job %q in %s", job.Name, filename).
				WithContext("file", filename)
		}
		seen[job.Name] = true
	}
	return jobs, nil
}

func (l *Loader) parse(parser *hclparse.Parser, src []byte, filename string) ([]quote.Job, error) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags)
	}

	jobs := make([]quote.Job, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		var spec jobSpec
		if diags := gohcl.DecodeBody(block.Body, nil, &spec); diags.HasErrors() {
			return nil, diagnosticsError(diags)
		}

		job, err := spec.toJob(block.Labels[0], l.defaults)
		if err != nil {
			return nil, located(err, block.DefRange)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// diagnosticsError reports the first error diagnostic with its position
func diagnosticsError(diags hcl.Diagnostics) error {
	var messages []string
	var first *hcl.Diagnostic
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if first == nil {
			first = diag
		}
		messages = append(messages, diag.Error())
	}

	err := errors.Parsing(strings.Join(messages, "; "), diags)
	if first != nil && first.Subject != nil {
		err.WithContext("file", first.Subject.Filename).
			WithContext("line", first.Subject.Start.Line)
	}
	return err
}

// located tags err with the job block's position
func located(err error, rng hcl.Range) error {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return err
	}
	e.Message = fmt.Sprintf("%s:%d: %s", rng.Filename, rng.Start.Line, e.Message)
	return e.WithContext("file", rng.Filename).WithContext("line", rng.Start.Line)
}
