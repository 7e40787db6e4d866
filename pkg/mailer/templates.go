package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome greets a freshly registered account.
const TemplateWelcome = "welcome"

var welcomeHTML = template.Must(template.New(TemplateWelcome).Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to {{.AppName}}, {{.Username}}!</h2>
    <p>Your account is ready. Sign in to browse listings or publish your own.</p>
    <p style="color:#888;font-size:12px">You received this email because an account
    was created with this address. If that wasn't you, you can ignore this message.</p>
  </body>
</html>`))

// Render produces subject, text, and html bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		var buf bytes.Buffer
		if err = welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = fmt.Sprintf("Welcome to %v", data["AppName"])
		text = fmt.Sprintf("Welcome to %v, %v! Your account is ready.", data["AppName"], data["Username"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
