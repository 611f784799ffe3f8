package ui

import (
	"strings"

	"voicequery/internal/domain"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

func uploadPage(tables []domain.TableInfo, outcome *domain.IngestResult) gomponents.Node {
	body := []gomponents.Node{
		html.Div(
			html.Class(cardClass()),
			html.Form(
				html.Method("post"),
				html.Action("/ui/upload"),
				html.EncType("multipart/form-data"),
				html.Label(gomponents.Text("Data files")),
				html.Input(html.Type("file"), html.Name("files"), html.Multiple(), html.Required()),
				html.P(html.Class(mutedClass()), gomponents.Text("CSV or Excel. Each sheet becomes a table.")),
				html.Div(
					html.Class("button-row"),
					html.Button(html.Type("submit"), html.Class(primaryButtonClass()), gomponents.Text("Upload")),
				),
			),
		),
	}

	if outcome != nil {
		body = append(body, ingestOutcomeCard(outcome))
	}

	body = append(body, registeredTablesCard(tables))
	return appPage("Upload", "upload", gomponents.Group(body))
}

func ingestOutcomeCard(outcome *domain.IngestResult) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(outcome.Tables))
	for _, t := range outcome.Tables {
		status := gomponents.Node(gomponents.Text("registered"))
		if t.Error != "" {
			status = html.Span(html.Class("error"), gomponents.Text(t.Error))
		}
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(t.Name)),
			html.Td(gomponents.Text(strings.Join(t.Columns, ", "))),
			html.Td(status),
		))
	}
	return html.Div(
		html.Class(cardClass("table-wrap")),
		html.H2(gomponents.Text("Ingestion Result")),
		html.Table(
			html.THead(html.Tr(html.Th(gomponents.Text("Table")), html.Th(gomponents.Text("Columns")), html.Th(gomponents.Text("Status")))),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

func registeredTablesCard(tables []domain.TableInfo) gomponents.Node {
	if len(tables) == 0 {
		return html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text("Registered Tables")),
			html.P(html.Class(mutedClass()), gomponents.Text("Nothing uploaded yet.")),
		)
	}

	rows := make([]gomponents.Node, 0, len(tables))
	for _, t := range tables {
		cols := make([]string, 0, len(t.Columns))
		for _, c := range t.Columns {
			cols = append(cols, c.Name)
		}
		rows = append(rows, html.Tr(
			data.Show(containsExpr(t.Name+" "+strings.Join(cols, " "))),
			html.Td(gomponents.Text(t.Name)),
			html.Td(gomponents.Text(strings.Join(cols, ", "))),
		))
	}

	return html.Div(
		html.Class(cardClass("table-wrap")),
		data.Signals(map[string]any{"q": ""}),
		html.H2(gomponents.Text("Registered Tables")),
		html.Label(gomponents.Text("Quick filter")),
		html.Input(html.Type("search"), data.Bind("q"), html.Placeholder("Filter by table or column name"), html.AutoComplete("off")),
		html.Table(
			html.THead(html.Tr(html.Th(gomponents.Text("Table")), html.Th(gomponents.Text("Columns")))),
			html.TBody(gomponents.Group(rows)),
		),
	)
}
