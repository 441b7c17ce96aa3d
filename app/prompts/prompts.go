// Package prompts renders the embedded text/template prompts sent to the
// generative-text client.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// RegisterUserMetadata is the prompt rendered after onboarding.
const RegisterUserMetadata = "registerUserMetadata"

// SystemInstruction frames every recommendation request.
const SystemInstruction = "You are a certified strength coach and registered dietitian. " +
	"Give specific, safe and practical advice. Never diagnose medical conditions."

//go:embed templates/*.tmpl
var files embed.FS

// Factory holds the parsed templates. It is safe for concurrent use.
type Factory struct {
	templates *template.Template
}

func NewFactory() (*Factory, error) {
	t, err := template.New("prompts").Option("missingkey=zero").ParseFS(files, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("prompts: parse templates: %w", err)
	}
	return &Factory{templates: t}, nil
}

// Names lists the available prompt names.
func (f *Factory) Names() []string {
	var names []string
	for _, t := range f.templates.Templates() {
		if name, ok := strings.CutSuffix(t.Name(), ".tmpl"); ok {
			names = append(names, name)
		}
	}
	return names
}

// Render executes the named prompt with vars. Variables the template does not
// reference are ignored and ones it references but vars lacks render empty.
func (f *Factory) Render(name string, vars map[string]string) (string, error) {
	t := f.templates.Lookup(name + ".tmpl")
	if t == nil {
		return "", fmt.Errorf("prompts: unknown prompt %q", name)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, vars); err != nil {
		return "", fmt.Errorf("prompts: render %s: %w", name, err)
	}
	return sb.String(), nil
}
