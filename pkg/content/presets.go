package content

// Template identifies a starter layout offered when creating an issue.
type Template string

const (
	TemplateDefault Template = "default"
	TemplateMinimal Template = "minimal"
	TemplateEvent   Template = "event"
	TemplateEmpty   Template = "empty"
)

// Templates lists the starter layouts in menu order.
var Templates = []Template{TemplateDefault, TemplateMinimal, TemplateEvent, TemplateEmpty}

// ApplyTemplate reshapes n into the given starter layout.
// The default template and unknown ids leave n unchanged.
func ApplyTemplate(n Newsletter, t Template) Newsletter {
	out := n.Clone()
	switch t {
	case TemplateMinimal:
		if len(out.Articles) > 2 {
			out.Articles = out.Articles[:2]
		}
		out.ShowVideo = false
		out.ShowFeedback = false
	case TemplateEvent:
		out.IssueNumber = "Zaproszenie na wydarzenie"
		out.MainTitle = "Zapraszamy na event firmowy!"
		out.MainDescription = "Dołącz do nas na niezapomnianym wydarzeniu. Szczegóły wewnątrz!"
		out.Articles = []Article{}
		out.ShowVideo = false
	case TemplateEmpty:
		out.Articles = []Article{}
		out.ShowVideo = false
		out.ShowFeedback = false
	default:
		return n
	}
	if out.CurrentArticleID != nil && out.articleIndex(*out.CurrentArticleID) < 0 {
		out.CurrentArticleID = nil
	}
	return out
}

// ColorScheme is a named set of the five style colors.
type ColorScheme struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
	ButtonText string `json:"buttonText"`
}

// ColorSchemes lists the built-in schemes.
var ColorSchemes = []ColorScheme{
	{Name: "PORR", Primary: "#143e70", Accent: "#feed01", Text: "#143e70", Background: "#fafafa", ButtonText: "#143e70"},
	{Name: "Dark", Primary: "#0a1628", Accent: "#00d9a5", Text: "#333333", Background: "#f5f5f5", ButtonText: "#ffffff"},
	{Name: "Warm", Primary: "#2d3436", Accent: "#e17055", Text: "#2d3436", Background: "#ffeaa7", ButtonText: "#ffffff"},
	{Name: "Corp", Primary: "#2c3e50", Accent: "#3498db", Text: "#2c3e50", Background: "#ecf0f1", ButtonText: "#ffffff"},
	{Name: "Green", Primary: "#1a5276", Accent: "#27ae60", Text: "#1a5276", Background: "#f8f9fa", ButtonText: "#ffffff"},
	{Name: "Bold", Primary: "#2c2c54", Accent: "#ff6348", Text: "#2c2c54", Background: "#ffffff", ButtonText: "#ffffff"},
}

// ApplyColorScheme sets the five style colors from the named scheme.
// Unknown names leave n unchanged.
func ApplyColorScheme(n Newsletter, name string) Newsletter {
	for _, s := range ColorSchemes {
		if s.Name != name {
			continue
		}
		out := n.Clone()
		out.PrimaryColor = s.Primary
		out.AccentColor = s.Accent
		out.TextColor = s.Text
		out.BgColor = s.Background
		out.ButtonTextColor = s.ButtonText
		return out
	}
	return n
}

// Font is one entry of the font picker.
type Font struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Fonts is the closed list of email-safe font stacks.
var Fonts = []Font{
	{Value: DefaultFont, Label: "Trebuchet MS"},
	{Value: "Arial, sans-serif", Label: "Arial"},
	{Value: "'Segoe UI', sans-serif", Label: "Segoe UI"},
	{Value: "Verdana, sans-serif", Label: "Verdana"},
	{Value: "Georgia, serif", Label: "Georgia"},
	{Value: "'Courier New', monospace", Label: "Courier New"},
}
