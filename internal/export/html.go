package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nguyentantai21042004/recap/internal/document"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"timeRange": timeRange,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
section { border-left: 4px solid #4285F4; padding-left: 1rem; margin-bottom: 2rem; }
pre { white-space: pre-wrap; background: #f6f6f6; padding: 0.75rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Export.Blocks}}
<section id="{{.ID}}">
<h2>{{.Title}}</h2>
<p>{{if .Link}}<a href="{{.Link}}" target="_blank">{{timeRange .}}</a>{{else}}{{timeRange .}}{{end}}</p>
<h3>Summary</h3>
<p>{{.Summary}}</p>
<h3>Transcript</h3>
<pre>{{.Transcript}}</pre>
</section>
{{- end}}
</body>
</html>
`))

// HTML renders a self-contained HTML page.
func HTML(title string, e document.Export) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Title  string
		Export document.Export
	}{title, e}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
