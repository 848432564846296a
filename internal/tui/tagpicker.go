package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/petrotech/petrotech/internal/viewstate"
)

// TagPickerMode selects which transition a TagPicker applies.
type TagPickerMode int

const (
	TagPickerAdd TagPickerMode = iota
	TagPickerRemove
)

// TagPicker wraps a Huh select for adding or removing one selected tag.
type TagPicker struct {
	form     *huh.Form
	mode     TagPickerMode
	options  []string
	selected string
}

// NewAddTagPicker offers every catalog tag not already selected in s.
// It returns nil when there is nothing left to add.
func NewAddTagPicker(all []string, s viewstate.State) *TagPicker {
	var options []string
	for _, tag := range all {
		if !s.HasTag(tag) {
			options = append(options, tag)
		}
	}
	return newTagPicker(TagPickerAdd, "Add tag", options)
}

// NewRemoveTagPicker offers the tags selected in s. It returns nil when no
// tag is selected.
func NewRemoveTagPicker(s viewstate.State) *TagPicker {
	return newTagPicker(TagPickerRemove, "Remove tag", s.Tags)
}

func newTagPicker(mode TagPickerMode, title string, options []string) *TagPicker {
	if len(options) == 0 {
		return nil
	}
	tp := &TagPicker{
		mode:     mode,
		options:  append([]string(nil), options...),
		selected: options[0],
	}

	tp.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huh.NewOptions(tp.options...)...).
				Height(min(len(tp.options)+2, 12)).
				Value(&tp.selected),
		),
	).WithShowHelp(true)

	return tp
}

// Apply returns s with the picked tag added or removed.
func (tp *TagPicker) Apply(s viewstate.State) viewstate.State {
	if tp.mode == TagPickerRemove {
		return s.RemoveTag(tp.selected)
	}
	return s.AddTag(tp.selected)
}

// Mode returns whether the picker adds or removes.
func (tp *TagPicker) Mode() TagPickerMode { return tp.mode }

// Options returns the tags offered by the picker.
func (tp *TagPicker) Options() []string { return tp.options }

// Selected returns the currently highlighted tag.
func (tp *TagPicker) Selected() string { return tp.selected }

// Form returns the underlying huh.Form for Bubble Tea embedding.
func (tp *TagPicker) Form() *huh.Form { return tp.form }

// SetForm replaces the underlying huh.Form. This is used when the form's
// Update method returns a new Form instance.
func (tp *TagPicker) SetForm(f *huh.Form) { tp.form = f }

// IsCompleted returns true if the form has been completed (submitted).
func (tp *TagPicker) IsCompleted() bool { return tp.form.State == huh.StateCompleted }

// IsAborted returns true if the form has been aborted (cancelled).
func (tp *TagPicker) IsAborted() bool { return tp.form.State == huh.StateAborted }
