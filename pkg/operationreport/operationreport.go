// Package operationreport collects the errors found while building directives from schema sources.
package operationreport

import (
	"errors"
	"fmt"
	"strings"
)

// Report holds every error of one build. External errors are shown to schema authors,
// internal errors point at misuse of the library.
type Report struct {
	InternalErrors []error
	ExternalErrors []ExternalError
}

func (r Report) Error() string {
	lines := make([]string, 0, len(r.InternalErrors)+len(r.ExternalErrors))
	for i := range r.InternalErrors {
		lines = append(lines, fmt.Sprintf("internal: %s", r.InternalErrors[i].Error()))
	}
	for i := range r.ExternalErrors {
		lines = append(lines, fmt.Sprintf("external: %s, locations: %+v", r.ExternalErrors[i].Message, r.ExternalErrors[i].Locations))
	}
	return strings.Join(lines, "\n")
}

func (r *Report) HasErrors() bool {
	return len(r.InternalErrors) > 0 || len(r.ExternalErrors) > 0
}

func (r *Report) AddInternalError(err error) {
	r.InternalErrors = append(r.InternalErrors, err)
}

func (r *Report) AddExternalError(gqlError ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, gqlError)
}

// ErrorOrNil returns the report as an error if it has errors.
func (r *Report) ErrorOrNil() error {
	if r.HasErrors() {
		return *r
	}
	return nil
}

// Messages returns one human readable line per error, internal errors first.
// External errors end with their locations, e.g. `There can be only one directive named "@a". (1:12, 3:12)`.
func (r *Report) Messages() []string {
	out := make([]string, 0, len(r.InternalErrors)+len(r.ExternalErrors))
	for i := range r.InternalErrors {
		out = append(out, r.InternalErrors[i].Error())
	}
	for i := range r.ExternalErrors {
		out = append(out, r.ExternalErrors[i].Message+formatLocations(r.ExternalErrors[i].Locations))
	}
	return out
}

func formatLocations(locations []Location) string {
	if len(locations) == 0 {
		return ""
	}
	parts := make([]string, len(locations))
	for i := range locations {
		parts[i] = locations[i].String()
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

type FormatExternalErrorMessage func(report *Report) string

// ExternalErrorMessage formats the Report wrapped by err, ok is false when err holds no Report.
func ExternalErrorMessage(err error, formatFunction FormatExternalErrorMessage) (message string, ok bool) {
	var report Report
	if errors.As(err, &report) {
		return formatFunction(&report), true
	}
	return "", false
}
