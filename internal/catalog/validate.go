package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the format of Tool.Added.
const DateLayout = "2006-01-02"

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidationError represents a single validation problem.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds the outcome of validating a catalog.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"`
}

// Err joins all errors into one, or returns nil for a valid result.
func (r *ValidationResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

func (r *ValidationResult) addError(field, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{field, fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{field, fmt.Sprintf(format, args...)})
}

// Validate checks categories and tools against the catalog invariants.
// Errors make the catalog unusable; warnings flag entries that render poorly.
func Validate(categories []Category, tools []Tool) *ValidationResult {
	result := &ValidationResult{}

	categoryIDs := validateCategories(categories, result)
	validateTools(tools, categoryIDs, result)

	result.Valid = len(result.Errors) == 0
	return result
}

func validateCategories(categories []Category, result *ValidationResult) map[string]bool {
	seen := make(map[string]bool, len(categories))

	for i, c := range categories {
		prefix := fmt.Sprintf("categories[%d]", i)

		switch {
		case c.ID == "":
			result.addError(prefix+".id", "required")
		case seen[c.ID]:
			result.addError(prefix+".id", "duplicate category id: %s", c.ID)
		case !idPattern.MatchString(c.ID):
			result.addWarning(prefix+".id", "recommended: lowercase letters, numbers, and hyphens only")
		}
		seen[c.ID] = true

		if c.Name == "" {
			result.addWarning(prefix+".name", "missing; the id is shown instead")
		}
		if c.Icon != "" && !KnownIcons[c.Icon] {
			result.addWarning(prefix+".icon", "unknown icon: %s", c.Icon)
		}
	}

	return seen
}

func validateTools(tools []Tool, categoryIDs map[string]bool, result *ValidationResult) {
	seen := make(map[string]bool, len(tools))

	for i, t := range tools {
		prefix := fmt.Sprintf("tools[%d]", i)

		switch {
		case t.ID == "":
			result.addError(prefix+".id", "required")
		case seen[t.ID]:
			result.addError(prefix+".id", "duplicate tool id: %s", t.ID)
		case !idPattern.MatchString(t.ID):
			result.addWarning(prefix+".id", "recommended: lowercase letters, numbers, and hyphens only")
		}
		seen[t.ID] = true

		if t.Name == "" {
			result.addError(prefix+".name", "required")
		}

		if t.Category == "" {
			result.addError(prefix+".category", "required")
		} else if !categoryIDs[t.Category] {
			result.addError(prefix+".category", "unknown category: %s", t.Category)
		}

		for j, tag := range t.Tags {
			if strings.TrimSpace(tag) == "" {
				result.addWarning(fmt.Sprintf("%s.tags[%d]", prefix, j), "blank tag is never selectable")
			}
		}

		if t.Description == "" {
			result.addWarning(prefix+".description", "recommended: add a description")
		}
		if len(t.Tags) == 0 {
			result.addWarning(prefix+".tags", "recommended: add at least one tag")
		}
		if t.Icon != "" && !KnownIcons[t.Icon] {
			result.addWarning(prefix+".icon", "unknown icon: %s", t.Icon)
		}
		if t.Added == "" {
			result.addWarning(prefix+".added", "missing; tool sorts after dated entries")
		} else if _, err := time.Parse(DateLayout, t.Added); err != nil {
			result.addWarning(prefix+".added", "must be a YYYY-MM-DD date")
		}
	}
}
