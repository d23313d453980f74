package helpdoc

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ActionNode is an inline call-to-action link.
type ActionNode struct {
	ast.BaseInline
	URL      []byte
	Label    []byte
	Download bool
}

// KindAction is the node kind of ActionNode.
var KindAction = ast.NewNodeKind("Action")

func (n *ActionNode) Kind() ast.NodeKind { return KindAction }

func (n *ActionNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"URL": string(n.URL)}, nil)
}

var actionPrefixes = map[string]bool{
	"[!button|":   false,
	"[!download|": true,
}

type actionParser struct{}

func (p *actionParser) Trigger() []byte { return []byte{'['} }

// Parse recognises [!button|Label](url) and [!download|Label](url).
func (p *actionParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	for prefix, download := range actionPrefixes {
		if !bytes.HasPrefix(line, []byte(prefix)) {
			continue
		}
		label, rest, ok := bytes.Cut(line[len(prefix):], []byte("]("))
		if !ok || len(label) == 0 {
			return nil
		}
		url, _, ok := bytes.Cut(rest, []byte(")"))
		if !ok {
			return nil
		}
		block.Advance(len(prefix) + len(label) + 2 + len(url) + 1)
		return &ActionNode{URL: url, Label: label, Download: download}
	}
	return nil
}

type actionRenderer struct {
	html.Config
}

func (r *actionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAction, r.render)
}

func (r *actionRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ActionNode)

	_, _ = w.WriteString(`<a class="btn" href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, true)))
	_, _ = w.WriteString(`"`)
	if n.Download {
		_, _ = w.WriteString(" download")
	}
	_, _ = w.WriteString(">")
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

type actionExtension struct{}

func (actionExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&actionParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&actionRenderer{Config: html.NewConfig()}, 50),
	))
}

// Actions returns the goldmark extension for [!button|…] and [!download|…].
func Actions() goldmark.Extender {
	return actionExtension{}
}
