// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Parse(`
{{- range . -}}
<table class="benchplot">
<thead>
<tr><th>{{.Title}}</th>{{range .Libraries}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows -}}
<tr><td>{{.Label}}</td>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end -}}
</tbody>
</table>
{{end -}}
`))

// ToHTML writes ms to w as a sequence of HTML tables, formatted as
// in ToText.
func ToHTML(w io.Writer, ms []*Matrix) error {
	views := make([]view, len(ms))
	for i, m := range ms {
		views[i] = m.view()
	}
	return htmlTemplate.Execute(w, views)
}
