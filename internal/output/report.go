package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/wlbtid/calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// reportBundle lists the formatters written by the "all" format.
var reportBundle = []string{"console", "detailed-csv", "html"}

// GenerateReport writes the report in the named format (or "all") into dir and returns
// the files written.
func GenerateReport(r *Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range reportBundle {
			written, err := GenerateReport(r, name, dir)
			if err != nil {
				return files, err
			}
			files = append(files, written...)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	filename, err := WriteFormatted(dir, f, r, ExtensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{filename}, nil
}

// SaveConfiguration writes the inputs as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
