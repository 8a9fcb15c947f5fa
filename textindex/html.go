package textindex

import (
	"io"

	"golang.org/x/net/html"
)

// AddHTML ingests the textual content of an HTML fragment into the index.
// It does no interpretation of layout or styling, but extracts the pure text
// of all text nodes and tokenizes it like AddText.
func (ix *Index) AddHTML(input io.Reader) error {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		ix.collectText(n)
	}
	return nil
}

func (ix *Index) collectText(n *html.Node) {
	if n.Type == html.TextNode {
		ix.AddText(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		ix.collectText(c)
	}
}
