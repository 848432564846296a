package catalog

// Icon is a symbolic icon identifier. Presentation layers resolve it to a
// glyph; the data model never carries rendered assets.
type Icon string

const (
	IconDatabase Icon = "database"
	IconDrill    Icon = "drill"
	IconPipeline Icon = "pipeline"
	IconMountain Icon = "mountain"
	IconFlask    Icon = "flask"
	IconChart    Icon = "chart"
	IconShield   Icon = "shield"
	IconBrain    Icon = "brain"
)

// KnownIcons contains every icon identifier presentation layers can render.
var KnownIcons = map[Icon]bool{
	IconDatabase: true,
	IconDrill:    true,
	IconPipeline: true,
	IconMountain: true,
	IconFlask:    true,
	IconChart:    true,
	IconShield:   true,
	IconBrain:    true,
}

// Category groups tools by engineering discipline.
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon Icon   `json:"icon" yaml:"icon"`
}

// Tool is a single software entry in the catalog.
type Tool struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Icon         Icon     `json:"icon" yaml:"icon"`
	Category     string   `json:"category" yaml:"category"`
	Description  string   `json:"description" yaml:"description"`
	Tags         []string `json:"tags" yaml:"tags"`
	Features     []string `json:"key_features" yaml:"key_features"`
	UseCase      string   `json:"use_case" yaml:"use_case"`
	Integrations []string `json:"integrations" yaml:"integrations"`
	Licensing    string   `json:"licensing" yaml:"licensing"`
	// Added is the ISO date (YYYY-MM-DD) the entry joined the catalog.
	Added    string `json:"added,omitempty" yaml:"added,omitempty"`
	Homepage string `json:"homepage,omitempty" yaml:"homepage,omitempty"`
}

// HasTag reports whether the tool carries the exact tag.
func (t Tool) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// clone returns a deep copy so callers cannot reach the catalog's slices.
func (t Tool) clone() Tool {
	t.Tags = append([]string(nil), t.Tags...)
	t.Features = append([]string(nil), t.Features...)
	t.Integrations = append([]string(nil), t.Integrations...)
	return t
}
