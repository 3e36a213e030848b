package command

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

const statusTemplate = `Crew:
{{- range .Members }}
  {{ .Name | title }}{{ if .Controlled }} (controlled){{ end }}: {{ .Health }}% health, stamina {{ .Stamina }}
  {{- if .Wielded }}, wielding {{ .Wielded }}{{ end }}
  {{- if .Waiting }}, waiting{{ end }}
{{- end }}
Crew points: {{ .Points }}
{{- if .Ship }}
The ship {{ .Ship }}.
{{- end }}`

const inventoryTemplate = `{{ .Name | title }} is carrying {{ if .Items }}{{ join ", " .Items }}{{ else }}nothing{{ end }}.
{{- if .Wielded }}
{{ .Name | title }} is wielding {{ .Wielded }}.
{{- end }}`

const checkTemplate = `{{ .Name | title }}
{{- if .Damage }}
Weapon damage: {{ .Damage }}
{{- end }}
{{- if .Price }}
Worth {{ .Price }} points, sells for {{ div .Price 2 }}.
{{- end }}
{{- if .Health }}
Health: {{ .Health }}%
{{- end }}`

const helpText = `Commands:
  take all, take <item>, give <item> to <crew>, wield <item>
  use medkit, eat food ration, open <container>, check <thing>
  enter <door>, force <door>, go to ship
  attack, attack <creature>
  refuel ship, launch ship
  talk to <character>, recruit <character>, trade, tame <creature>
  name <pet> as <name>, tell <crew> to wait, tell <crew> to follow
  control <crew>
  status, inventory, help, wait, rest
While trading:
  buy <item>, buy <amount> <item>, sell <item>, sell all <item>, exit`
