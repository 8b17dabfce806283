package formula

import (
	"io"
	"strings"
	"text/template"
	"unicode"

	"github.com/rotisserie/eris"
)

var rubyTemplate = template.Must(template.New("formula").Funcs(template.FuncMap{
	"q":     rubyString,
	"class": className,
}).Parse(`class {{class .Name}} < Formula
  desc {{q .Desc}}
  homepage {{q .Homepage}}
  url {{q .URL}}
{{- if .SHA256}}
  sha256 {{q .SHA256}}
{{- else}}
  sha256 "" # TODO: checksum unset, run "sportsterminal formula checksum --update" after tagging v{{.Version}}
{{- end}}
  license {{q .License}}

  depends_on "go" => :build

  def install
    system "go", "build", *std_go_args(ldflags: {{q .LDFlags}}){{if ne .Package "."}}, {{q .Package}}{{end}}
  end

  test do
    assert_match {{q .Test.ExpectOutput}}, shell_output("#{bin}/{{.Binary}}{{range .Test.Args}} {{.}}{{end}} 2>&1", {{.Test.ExpectExit}})
  end
end
`))

// Render writes f as a Homebrew Ruby formula.
func Render(w io.Writer, f *Formula) error {
	if err := rubyTemplate.Execute(w, f); err != nil {
		return eris.Wrap(err, "render formula")
	}
	return nil
}

// className turns a formula name into its Ruby class name, e.g.
// "sports-terminal" into "SportsTerminal".
func className(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '-' || r == '_' || r == '.' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// rubyString quotes s as a double-quoted Ruby string literal.
func rubyString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `#{`, `\#{`)
	return `"` + r.Replace(s) + `"`
}
