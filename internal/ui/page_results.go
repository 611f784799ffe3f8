package ui

import (
	"encoding/json"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func resultsPage(rows json.RawMessage) gomponents.Node {
	body := gomponents.Node(html.Div(
		html.Class(cardClass()),
		html.P(html.Class(mutedClass()), gomponents.Text("No results cached yet.")),
		html.P(html.A(html.Href("/ui/query"), gomponents.Text("Ask a question ->"))),
	))
	if len(rows) > 0 && string(rows) != "[]" {
		body = resultCard("Last Results", "", rows)
	}
	return appPage("Results", "results", body)
}
