package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

var (
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// Renderer draws widget trees.
type Renderer struct {
	width int
}

// NewRenderer creates a renderer that fits output into width cells.
func NewRenderer(width int) *Renderer {
	return &Renderer{width: width}
}

// Widget renders a single widget with its resolved colors. Borders show as
// brackets (rounded when the radius is set) and outlines as chevrons.
func (r *Renderer) Widget(obj *toolkit.Object) string {
	res := Resolve(obj)

	text := obj.Text()
	if text == "" {
		text = obj.Class().String()
	}

	body := lipgloss.NewStyle().Padding(0, min(res.Pad, 3))
	if res.Visible() {
		body = body.Background(lipgloss.Color(res.Bg.String()))
	}
	if res.HasText {
		body = body.Foreground(lipgloss.Color(res.Text.String()))
	}
	out := body.Render(text)

	if res.BorderWidth > 0 {
		left, right := "[", "]"
		if res.Radius > 0 {
			left, right = "(", ")"
		}
		bs := lipgloss.NewStyle().Foreground(lipgloss.Color(res.Border.String()))
		out = bs.Render(left) + out + bs.Render(right)
	}
	if res.OutlineWidth > 0 {
		ol := lipgloss.NewStyle().Foreground(lipgloss.Color(res.Outline.String()))
		out = ol.Render("»") + out + ol.Render("«")
	}
	return out
}

// Tree renders root and its descendants, one widget per line. The selected
// widget, if any, is marked.
func (r *Renderer) Tree(root, selected *toolkit.Object) string {
	var b strings.Builder
	base := root.Depth()
	root.Walk(func(obj *toolkit.Object) {
		marker := "  "
		if obj == selected {
			marker = selectedStyle.Render("▸ ")
		}
		indent := strings.Repeat("  ", obj.Depth()-base)
		name := fmt.Sprintf("%-12s", obj.Class().String())
		state := ""
		if obj.State() != toolkit.StateDefault {
			state = " " + dimStyle.Render("("+obj.State().String()+")")
		}
		line := marker + indent + dimStyle.Render(name) + " " + r.Widget(obj) + state
		b.WriteString(r.fit(line))
		b.WriteString("\n")
	})
	return b.String()
}

// Detail lists the styles attached to obj and its resolved properties.
func (r *Renderer) Detail(obj *toolkit.Object) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s #%d", obj.Class(), obj.ID())))
	b.WriteString(" " + dimStyle.Render("state "+obj.State().String()) + "\n")

	styles := obj.Styles()
	fmt.Fprintf(&b, "%d styles attached\n", len(styles))
	for i, e := range styles {
		active := " "
		if obj.State().Has(e.Selector) {
			active = "*"
		}
		props := make([]string, 0, e.Style.Len())
		for _, p := range e.Style.Props() {
			v, _ := e.Style.Get(p)
			props = append(props, p.String()+"="+formatValue(v))
		}
		line := fmt.Sprintf("%s %2d %-9s %s", active, i, e.Selector, strings.Join(props, " "))
		b.WriteString(r.fit(line) + "\n")
	}

	res := Resolve(obj)
	b.WriteString(headerStyle.Render("resolved") + "\n")
	rows := [][2]string{
		{"bg", optColor(res.Bg, res.Visible())},
		{"text", optColor(res.Text, res.HasText)},
		{"font", res.Font.Name},
		{"border", fmt.Sprintf("%dpx %s", res.BorderWidth, res.Border)},
		{"radius", fmt.Sprint(res.Radius)},
		{"pad", fmt.Sprint(res.Pad)},
		{"outline", fmt.Sprintf("%dpx %s", res.OutlineWidth, res.Outline)},
	}
	for _, row := range rows {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-8s", row[0])) + row[1] + "\n")
	}
	return b.String()
}

// Chain renders a theme chain from leaf to root.
func Chain(th *toolkit.Theme) string {
	if th == nil {
		return "(no theme)"
	}
	names := make([]string, 0, th.ChainLength())
	for _, t := range th.Chain() {
		name := t.Name
		if name == "" {
			name = "(unnamed)"
		}
		names = append(names, name)
	}
	return strings.Join(names, " -> ")
}

func (r *Renderer) fit(line string) string {
	if r.width <= 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(r.width).Render(line)
}

func optColor(c toolkit.Color, ok bool) string {
	if !ok {
		return "-"
	}
	return c.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case *toolkit.Font:
		if x == nil {
			return "-"
		}
		return x.Name
	default:
		return fmt.Sprint(x)
	}
}
