package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"
)

var htmlTableTemplate = template.Must(template.New("table").Parse(`<figure>
  <figcaption>{{.Title}}</figcaption>
  <table>
    <thead>
      <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
    </tbody>
  </table>
  <footer>{{.Footer}}</footer>
</figure>
`))

// HTML renders the table as an HTML fragment. Cell values are
// already formatted (currency, counts); the template only escapes.
func (t *Table) HTML() (string, error) {
	var sb strings.Builder

	if err := htmlTableTemplate.Execute(&sb, t); err != nil {
		return "", fmt.Errorf("failed to render HTML table: %w", err)
	}

	return sb.String(), nil
}

// WriteHTML renders the table and writes it to path.
func (t *Table) WriteHTML(path string) error {
	html, err := t.HTML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
