// Command genformat emits one concrete Q-format type file, the Go
// equivalent of instantiating libq's fixed_point<value_type, n, f, e,
// op, up> template for a specific (n, f, e, signedness) tuple. It is
// invoked via go:generate directives atop each hand-promoted format
// file in the root package; run it again after editing a descriptor's
// n/f/e/signedness to regenerate that file's constructors and
// format-preserving boilerplate (the promotion-driven methods that
// return a different concrete type are written by hand afterward,
// since the generator has no visibility into which companion types a
// given file already declares).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"
)

var formatTmpl = template.Must(template.New("format").Parse(`package fixed

import "github.com/avdva/qfixed/internal/qcore"

var desc{{.Name}} = qcore.Descriptor{
	IntBits:   {{.N}},
	FracBits:  {{.F}},
	Exp:       {{.E}},
	Signed:    {{.Signed}},
	Overflow:  qcore.PolicySaturate,
	Underflow: qcore.PolicyIgnore,
}

// {{.Name}} is {{if .Signed}}a signed{{else}}an unsigned{{end}} Q({{.N}},{{.F}}) fixed-point value.
type {{.Name}} struct{ Base }

func New{{.Name}}(x float64) ({{.Name}}, error) {
	stored, err := qcore.FromFloat(x, desc{{.Name}})
	return {{.Name}}{Base{stored, &desc{{.Name}}}}, err
}

func {{.Name}}FromInt(x int64) ({{.Name}}, error) {
	stored, err := qcore.FromInt(x, desc{{.Name}})
	return {{.Name}}{Base{stored, &desc{{.Name}}}}, err
}

func {{.Name}}FromRaw(raw int64) ({{.Name}}, error) {
	stored, err := qcore.Wrap(raw, desc{{.Name}})
	return {{.Name}}{Base{stored, &desc{{.Name}}}}, err
}
`))

type formatArgs struct {
	Name   string
	N, F, E int
	Signed bool
}

func main() {
	n := flag.Int("n", 0, "integer bit width")
	f := flag.Int("f", 0, "fractional bit width")
	e := flag.Int("e", 0, "external scaling exponent")
	signed := flag.Bool("signed", true, "signed format")
	out := flag.String("out", "", "output file path")
	flag.Parse()

	prefix := "Q"
	if !*signed {
		prefix = "UQ"
	}
	name := fmt.Sprintf("%s%d_%d", prefix, *n, *f)

	if *out == "" {
		log.Fatal("genformat: -out is required")
	}

	w, err := os.Create(*out)
	if err != nil {
		log.Fatalf("genformat: %v", err)
	}
	defer w.Close()

	if err := formatTmpl.Execute(w, formatArgs{Name: name, N: *n, F: *f, E: *e, Signed: *signed}); err != nil {
		log.Fatalf("genformat: %v", err)
	}
	log.Printf("genformat: wrote %s (%s)", *out, strings.ToLower(name))
}
