package ui

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

type overviewCardData struct {
	Title       string
	Description string
	Href        string
	LinkLabel   string
}

func overviewPage(cards []overviewCardData) gomponents.Node {
	nodes := make([]gomponents.Node, 0, len(cards))
	for _, c := range cards {
		nodes = append(nodes, html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text(c.Title)),
			html.P(html.Class(mutedClass()), gomponents.Text(c.Description)),
			html.P(html.A(html.Href(c.Href), gomponents.Text(c.LinkLabel))),
		))
	}
	return appPage("Overview", "home", gomponents.Group(nodes))
}
