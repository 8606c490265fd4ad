package prompts

import (
	"bytes"
	"text/template"
)

type knowledgeData struct {
	Spec string
}

var pmKnowledgeTmpl = template.Must(template.New("pm").Parse(
	"Create user stories from this product spec:\n{{.Spec}}"))

var programKnowledgeTmpl = template.Must(template.New("program").Parse(
	"Define product features in this format:\n" +
		"Feature Name: ...\nDescription: ...\nKey Functionality: ...\nUser Benefit: ...\n{{.Spec}}"))

var devKnowledgeTmpl = template.Must(template.New("dev").Parse(
	"Define engineering tasks in this format:\n" +
		"Task ID: ...\nTask Title: ...\nRelated User Story: ...\nDescription: ...\n" +
		"Acceptance Criteria: ...\nEstimated Effort: ...\nDependencies: ...\n{{.Spec}}"))

func render(tmpl *template.Template, spec string) string {
	var buf bytes.Buffer
	// Templates are static and the data is one string field; execution
	// cannot fail at runtime.
	_ = tmpl.Execute(&buf, knowledgeData{Spec: spec})
	return buf.String()
}

// ProductManagerKnowledge builds the knowledge context for the product
// manager agent from a product spec.
func ProductManagerKnowledge(spec string) string {
	return render(pmKnowledgeTmpl, spec)
}

func ProgramManagerKnowledge(spec string) string {
	return render(programKnowledgeTmpl, spec)
}

func DevelopmentEngineerKnowledge(spec string) string {
	return render(devKnowledgeTmpl, spec)
}
