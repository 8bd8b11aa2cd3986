package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// GenerateReport writes the report in the requested format to dir and returns
// the files it created. "all" writes every registered file format.
func GenerateReport(report *domain.AnalysisReport, format, dir string) ([]string, error) {
	if report == nil || report.Output == nil {
		return nil, fmt.Errorf("generate report: missing calculator output")
	}
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range []string{"console", "csv", "detailed-csv", "json", "html"} {
			f := GetFormatterByName(name)
			path, err := WriteFormatted(f, report, dir, extensionFor(name))
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
		return written, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	path, err := WriteFormatted(f, report, dir, extensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// RenderReport writes a single format straight to w, for stdout use.
func RenderReport(w io.Writer, report *domain.AnalysisReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
