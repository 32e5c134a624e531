package email

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

var layout = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
<div style="max-width: 600px; margin: 0 auto;">
<h2 style="color: #0b6e4f;">{{.Title}}</h2>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}<p style="color: #888; font-size: 12px;">{{.Footer}}</p>
</div>
</body>
</html>
`))

type page struct {
	Title      string
	Paragraphs []string
	Footer     string
}

func render(p page) (string, error) {
	var buf bytes.Buffer
	if err := layout.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// paragraphs splits plain text on blank lines.
func paragraphs(text string) []string {
	out := []string{}
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func plainMessage(subject string, text string, clinic string) (string, error) {
	return render(page{Title: subject, Paragraphs: paragraphs(text), Footer: clinic})
}

func intakeConfirmation(fullName string, reason string, preferredDate time.Time, clinic string) (string, string, error) {
	subject := "We received your appointment request"
	body, err := render(page{
		Title: subject,
		Paragraphs: []string{
			"Dear " + fullName + ",",
			"Thank you for contacting " + clinic + ". We have received your request regarding: " + reason + ".",
			"Your preferred date is " + preferredDate.Format("Monday, 02 January 2006") + ". Our staff will contact you to confirm the schedule.",
		},
		Footer: clinic,
	})
	return subject, body, err
}
