package ui

import (
	"encoding/json"
	"fmt"
	"sort"

	"voicequery/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const queryMaxRows = 200

func queryPage(question string, result *domain.QueryResult, lastRows json.RawMessage, runError string) gomponents.Node {
	resultNode := gomponents.Node(html.P(html.Class(mutedClass()), gomponents.Text("Ask a question to see results.")))

	switch {
	case runError != "":
		resultNode = html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text("Query Error")),
			html.Pre(gomponents.Text(runError)),
		)
	case result != nil:
		resultNode = resultCard("Results", result.SQL, result.Rows)
	case len(lastRows) > 0 && string(lastRows) != "[]":
		resultNode = resultCard("Last Results", "", lastRows)
	}

	warningNode := gomponents.Node(nil)
	if result != nil && result.Warning != "" {
		warningNode = html.Div(html.Class("warning"), gomponents.Text(result.Warning))
	}

	return appPage(
		"Ask",
		"query",
		html.Div(
			html.Class(cardClass()),
			html.Form(
				html.ID("ask-form"),
				html.Method("post"),
				html.Action("/ui/query"),
				html.Label(gomponents.Text("Question")),
				html.Textarea(html.ID("question"), html.Name("query"), html.Required(), gomponents.Text(question)),
				html.Div(
					html.Class("button-row"),
					html.Button(html.Type("submit"), html.Class(primaryButtonClass()), gomponents.Text("Ask")),
					html.Button(
						html.ID("mic-button"),
						html.Type("button"),
						html.Class(secondaryButtonClass()+" btn-mic"),
						gomponents.Attr("data-listening", "false"),
						gomponents.Text("Speak"),
					),
					html.Span(html.ID("voice-status"), html.Class(mutedClass())),
				),
			),
		),
		warningNode,
		resultNode,
		html.Script(html.Src("/ui/static/js/voice.js"), html.Defer()),
	)
}

func resultCard(title, sqlText string, rows json.RawMessage) gomponents.Node {
	records, err := decodeRows(rows)
	if err != nil {
		return html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text(title)),
			html.P(html.Class("error"), gomponents.Text("Result rows could not be decoded.")),
		)
	}

	nodes := []gomponents.Node{html.H2(gomponents.Text(title))}
	if sqlText != "" {
		nodes = append(nodes, html.Pre(gomponents.Text(sqlText)))
	}

	if len(records) == 0 {
		nodes = append(nodes, html.P(html.Class(mutedClass()), gomponents.Text("No rows.")))
		return html.Div(html.Class(cardClass()), gomponents.Group(nodes))
	}

	columns := columnOrder(records)
	displayRows := records
	truncated := false
	if len(displayRows) > queryMaxRows {
		displayRows = displayRows[:queryMaxRows]
		truncated = true
	}

	headerCols := make([]gomponents.Node, 0, len(columns))
	for _, c := range columns {
		headerCols = append(headerCols, html.Th(gomponents.Text(c)))
	}

	bodyRows := make([]gomponents.Node, 0, len(displayRows))
	for _, rec := range displayRows {
		cells := make([]gomponents.Node, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, html.Td(gomponents.Text(cellString(rec[c]))))
		}
		bodyRows = append(bodyRows, html.Tr(gomponents.Group(cells)))
	}

	meta := fmt.Sprintf("%d row(s)", len(records))
	if truncated {
		meta = fmt.Sprintf("%d row(s), showing first %d", len(records), queryMaxRows)
	}

	nodes = append(nodes,
		html.P(html.Class(mutedClass()), gomponents.Text(meta)),
		html.Table(
			html.THead(html.Tr(gomponents.Group(headerCols))),
			html.TBody(gomponents.Group(bodyRows)),
		),
	)
	return html.Div(html.Class(cardClass("table-wrap")), gomponents.Group(nodes))
}

func decodeRows(raw json.RawMessage) ([]map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// columnOrder gives a stable column set across rows with uneven keys.
func columnOrder(records []map[string]interface{}) []string {
	seen := map[string]bool{}
	columns := []string{}
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatNumber(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		out, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(out)
	}
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
