package viewstate

import (
	"net/url"
	"strings"

	"github.com/petrotech/petrotech/internal/filter"
)

// Query parameter names used by Values and FromValues.
const (
	ParamSearch   = "q"
	ParamCategory = "category"
	ParamTag      = "tag"
	ParamSort     = "sort"
	ParamPanel    = "panel"
	ParamOpen     = "open"

	panelHidden = "hidden"
)

// Values encodes s as URL query parameters. Fields at their default value
// are omitted, so New().Values() is empty.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.Category != "" {
		v.Set(ParamCategory, s.Category)
	}
	for _, tag := range s.Tags {
		v.Add(ParamTag, tag)
	}
	if s.Sort != "" && s.Sort != filter.DefaultSortOrder {
		v.Set(ParamSort, string(s.Sort))
	}
	if !s.ShowCategories {
		v.Set(ParamPanel, panelHidden)
	}
	if s.Open != "" {
		v.Set(ParamOpen, s.Open)
	}
	return v
}

// Query returns "?" followed by the encoded form of s. The default state
// encodes to a bare "?".
func (s State) Query() string {
	enc := s.Values().Encode()
	if enc == "" {
		return "?"
	}
	return "?" + enc
}

// FromValues decodes a state from query parameters. Decoding never fails:
// unknown sort orders fall back to the default, blank and repeated tags are
// dropped.
func FromValues(v url.Values) State {
	s := New()
	s.Search = v.Get(ParamSearch)
	s.Category = strings.TrimSpace(v.Get(ParamCategory))
	for _, tag := range v[ParamTag] {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		s = s.AddTag(tag)
	}
	if order, err := filter.ParseSortOrder(v.Get(ParamSort)); err == nil {
		s.Sort = order
	}
	s.ShowCategories = v.Get(ParamPanel) != panelHidden
	s.Open = v.Get(ParamOpen)
	return s
}
