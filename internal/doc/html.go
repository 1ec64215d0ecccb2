package doc

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/adl-lang/adl/internal/cst"
)

// RenderHTML renders a Doc node's text and tags as HTML, treating each
// DocText run as markdown (descriptions commonly use backtick code spans and
// links the way Javadoc bodies use HTML tags), with tag blocks rendered as a
// trailing definition list.
func RenderHTML(n *cst.Node) (string, error) {
	var md bytes.Buffer
	var tags []*cst.Node

	for _, c := range n.Children {
		switch c.Kind {
		case cst.KindDocText:
			md.WriteString(c.TokenLiteral())
			md.WriteString("\n\n")
		case cst.KindDocParamTag, cst.KindDocTemplateTag, cst.KindDocReturnsTag, cst.KindDocUnknownTag:
			tags = append(tags, c)
		}
	}

	var out bytes.Buffer
	if err := goldmark.Convert(md.Bytes(), &out); err != nil {
		return "", err
	}

	if len(tags) > 0 {
		out.WriteString("<dl>\n")
		for _, tag := range tags {
			label, target, desc := tagParts(tag)
			out.WriteString("<dt>" + label)
			if target != "" {
				out.WriteString(" " + target)
			}
			out.WriteString("</dt>\n<dd>")

			var tagMD bytes.Buffer
			tagMD.WriteString(desc)
			var tagHTML bytes.Buffer
			if err := goldmark.Convert(tagMD.Bytes(), &tagHTML); err != nil {
				return "", err
			}
			out.Write(tagHTML.Bytes())
			out.WriteString("</dd>\n")
		}
		out.WriteString("</dl>\n")
	}

	return out.String(), nil
}

func tagParts(tag *cst.Node) (label, target, desc string) {
	switch tag.Kind {
	case cst.KindDocParamTag:
		label = "@param"
	case cst.KindDocTemplateTag:
		label = "@template"
	case cst.KindDocReturnsTag:
		label = "@returns"
	default:
		label = "@unknown"
	}
	for _, c := range tag.Children {
		switch c.Kind {
		case cst.KindIdentifier:
			target = c.TokenLiteral()
		case cst.KindDocText:
			desc = c.TokenLiteral()
		}
	}
	return
}
