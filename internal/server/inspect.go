package server

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/desertthunder/authcb/internal/shared"
)

// TemplateReport describes how a callback template will behave under fragment substitution.
type TemplateReport struct {
	Path        string
	Size        int
	Scripts     int // <script> elements in the document
	Occurrences int // placeholder occurrences anywhere in the file
	InScript    int // placeholder occurrences inside <script> elements
}

// InspectTemplate reads the template at path and counts placeholder occurrences.
func InspectTemplate(path string) (*TemplateReport, error) {
	doc, err := ReadTemplate(path)
	if err != nil {
		return nil, err
	}

	report := &TemplateReport{
		Path:        path,
		Size:        len(doc),
		Occurrences: bytes.Count(doc, []byte(Placeholder)),
	}

	parsed, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	parsed.Find("script").Each(func(_ int, s *goquery.Selection) {
		report.Scripts++
		report.InScript += strings.Count(s.Text(), Placeholder)
	})

	return report, nil
}

// Problems lists everything that would stop the fragment from reaching the page script.
func (r *TemplateReport) Problems() []error {
	var problems []error
	switch {
	case r.Occurrences == 0:
		problems = append(problems, shared.ErrPlaceholderMissing)
	case r.Occurrences > 1:
		problems = append(problems, fmt.Errorf("%w: %d occurrences, only the first is replaced", shared.ErrPlaceholderDuplicated, r.Occurrences))
	}
	if r.Occurrences > 0 && r.InScript < r.Occurrences {
		problems = append(problems, fmt.Errorf("%d placeholder occurrence(s) outside <script>", r.Occurrences-r.InScript))
	}
	return problems
}

// Err joins [TemplateReport.Problems] into one error, nil when the template is usable.
func (r *TemplateReport) Err() error {
	return errors.Join(r.Problems()...)
}
