package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/filter"
	"github.com/petrotech/petrotech/internal/output"
	"github.com/petrotech/petrotech/internal/viewstate"
)

//go:embed templates/index.html
var templates embed.FS

var iconEmoji = map[catalog.Icon]string{
	catalog.IconDatabase: "🛢️",
	catalog.IconDrill:    "⛏️",
	catalog.IconPipeline: "🔧",
	catalog.IconMountain: "⛰️",
	catalog.IconFlask:    "⚗️",
	catalog.IconChart:    "📈",
	catalog.IconShield:   "🛡️",
	catalog.IconBrain:    "🧠",
}

func emoji(icon catalog.Icon) string {
	if e, ok := iconEmoji[icon]; ok {
		return e
	}
	return "•"
}

func parsePage() (*template.Template, error) {
	t, err := template.New("index.html").
		Funcs(template.FuncMap{"icon": emoji}).
		ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return t, nil
}

type link struct {
	Label    string
	Href     string
	Icon     catalog.Icon
	Selected bool
}

type hiddenField struct {
	Name  string
	Value string
}

type card struct {
	catalog.Tool
	CategoryName string
	Href         string
}

type pageData struct {
	Brand             string
	Headline          string
	Tagline           string
	SearchPlaceholder string
	EmptyMessage      string

	State        viewstate.State
	Summary      string
	PanelHref    string
	Categories   []link
	SelectedTags []link
	TagOptions   []string
	SortOptions  []link
	ResetHref    string
	Cards        []card
	SearchHidden []hiddenField
	TagHidden    []hiddenField

	Opened    *output.ToolDetail
	CloseHref string
}

// query encodes st with sort and panel always explicit, so server defaults
// never override a user choice.
func query(st viewstate.State) url.Values {
	v := st.Values()
	v.Set(viewstate.ParamSort, string(st.Sort))
	if st.ShowCategories {
		v.Set(viewstate.ParamPanel, "shown")
	}
	return v
}

func href(st viewstate.State) string {
	return "/?" + query(st).Encode()
}

// hidden lists every query parameter of st except skip, for forms that
// change one parameter and keep the rest.
func hidden(st viewstate.State, skip string) []hiddenField {
	v := query(st)
	v.Del(skip)
	v.Del(viewstate.ParamOpen)

	var fields []hiddenField
	for _, name := range []string{viewstate.ParamSearch, viewstate.ParamCategory, viewstate.ParamTag, viewstate.ParamSort, viewstate.ParamPanel} {
		for _, value := range v[name] {
			fields = append(fields, hiddenField{Name: name, Value: value})
		}
	}
	return fields
}

func (s *Server) buildPage(st viewstate.State) pageData {
	result := output.NewSearchResult(s.catalog, st)
	browse := st.CloseTool()

	data := pageData{
		Brand:             output.Brand,
		Headline:          output.Headline,
		Tagline:           output.Tagline,
		SearchPlaceholder: output.SearchPlaceholder,
		EmptyMessage:      output.EmptyMessage,
		State:             st,
		Summary:           output.Summary(result),
		PanelHref:         href(browse.ToggleCategoryPanel()),
		ResetHref:         href(browse.ResetFilters()),
		SearchHidden:      hidden(browse, viewstate.ParamSearch),
		TagHidden:         hidden(browse, ""),
		CloseHref:         href(browse),
	}

	for _, c := range s.catalog.Categories() {
		data.Categories = append(data.Categories, link{
			Label:    c.Name,
			Href:     href(browse.ToggleCategory(c.ID)),
			Icon:     c.Icon,
			Selected: st.Category == c.ID,
		})
	}
	for _, tag := range st.Tags {
		data.SelectedTags = append(data.SelectedTags, link{Label: tag, Href: href(browse.RemoveTag(tag)), Selected: true})
	}
	for _, tag := range s.catalog.Tags() {
		if !st.HasTag(tag) {
			data.TagOptions = append(data.TagOptions, tag)
		}
	}
	for _, order := range filter.SortOrders {
		data.SortOptions = append(data.SortOptions, link{
			Label:    order.Label(),
			Href:     href(browse.SetSortOrder(order)),
			Selected: st.Sort == order,
		})
	}
	for _, t := range result.Tools {
		data.Cards = append(data.Cards, card{
			Tool:         t,
			CategoryName: result.CategoryName(t.Category),
			Href:         href(browse.OpenTool(t.ID)),
		})
	}

	if tool, ok := viewstate.OpenedTool(s.catalog, st); ok {
		data.Opened = output.NewToolDetail(s.catalog, tool)
	}
	return data
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.stateFrom(r)
	data := s.buildPage(st)

	status := http.StatusOK
	if st.Open != "" && data.Opened == nil {
		status = http.StatusNotFound
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
