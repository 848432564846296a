// internal/output/json.go
package output

import "encoding/json"

// JSONFormatter outputs results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format marshals the SearchResult as indented JSON.
func (f *JSONFormatter) Format(result *SearchResult) ([]byte, error) {
	return marshal(result)
}

// FormatTool marshals the ToolDetail as indented JSON.
func (f *JSONFormatter) FormatTool(detail *ToolDetail) ([]byte, error) {
	return marshal(detail)
}

func marshal(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
