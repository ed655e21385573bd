package common

import (
	"strings"

	"golang.org/x/net/html"

	"aktis-jira-pages/internal/models"
)

// ExtractText gets all text content from an HTML node and its children
func ExtractText(node *html.Node) string {
	var text strings.Builder

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(node)
	return strings.TrimSpace(text.String())
}

// FindFirst returns the first node in document order matching match, or nil
func FindFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	if match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := FindFirst(c, match); n != nil {
			return n
		}
	}
	return nil
}

// HasAttribute matches element nodes carrying attrKey
func HasAttribute(attrKey string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, attr := range n.Attr {
			if attr.Key == attrKey {
				return true
			}
		}
		return false
	}
}

// HasClass matches element nodes whose class list contains class
func HasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(GetAttribute(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// IsTag matches element nodes with the given tag name
func IsTag(tagName string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tagName
	}
}

// GetAttribute gets the value of an attribute from a node
func GetAttribute(node *html.Node, attrKey string) string {
	if node == nil || node.Type != html.ElementNode {
		return ""
	}
	for _, attr := range node.Attr {
		if attr.Key == attrKey {
			return attr.Val
		}
	}
	return ""
}

// ParseIssueRow reads key, summary and link from the outer HTML of a search
// result row. The data-key/title attributes win over the rendered spans.
func ParseIssueRow(outerHTML string) (models.IssueRow, error) {
	doc, err := html.Parse(strings.NewReader(outerHTML))
	if err != nil {
		return models.IssueRow{}, err
	}

	var row models.IssueRow

	if n := FindFirst(doc, HasAttribute("data-key")); n != nil {
		row.Key = GetAttribute(n, "data-key")
		row.Summary = GetAttribute(n, "title")
	}
	if row.Key == "" {
		if n := FindFirst(doc, HasClass("issue-link-key")); n != nil {
			row.Key = ExtractText(n)
		}
	}
	if row.Summary == "" {
		if n := FindFirst(doc, HasClass("issue-link-summary")); n != nil {
			row.Summary = ExtractText(n)
		}
	}
	if n := FindFirst(doc, IsTag("a")); n != nil {
		row.URL = GetAttribute(n, "href")
	}

	return row, nil
}
