package usecase

import (
	"bytes"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const (
	subjectOTPSkipped = "Sentinel Login OTP"
	subjectOTP        = "Your Sentinel Login OTP Code"
	otpValidity       = "5 minutes"
)

var otpHTMLTemplate = htmltemplate.Must(htmltemplate.New("otp_html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937; background-color: #f3f4f6; margin: 0; padding: 24px;">
  <div style="max-width: 480px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #0f766e; margin-top: 0;">Sentinel Healthcare</h2>
    <p>Hello {{.Name}},</p>
    <p>Use the following one-time password to sign in to your Sentinel account:</p>
    <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px; text-align: center; color: #0f766e; margin: 24px 0;">{{.Code}}</p>
    <p>This code is valid for {{.Validity}}.</p>
    <p><strong>Do not share this code with anyone.</strong> Sentinel staff will never ask for it.</p>
    <p>If you did not request this code, you can safely ignore this email.</p>
    <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 24px 0;">
    <p style="font-size: 12px; color: #6b7280;">This is an automated message from Sentinel Healthcare. Please do not reply.</p>
  </div>
</body>
</html>
`))

var otpTextTemplate = texttemplate.Must(texttemplate.New("otp_text").Parse(`Hello {{.Name}},

Your Sentinel login OTP code is: {{.Code}}

This code is valid for {{.Validity}}.

Do not share this code with anyone. Sentinel staff will never ask for it.

If you did not request this code, you can safely ignore this email.

This is an automated message from Sentinel Healthcare. Please do not reply.
`))

type otpTemplateData struct {
	Name     string
	Code     string
	Validity string
}

// renderOTPEmail returns the HTML and plain-text bodies of the login OTP email.
//
// Both templates are parsed at init and only reference string fields, and a
// bytes.Buffer never fails a write, so execution cannot fail; it panics if
// that ever stops holding, like template.Must.
func renderOTPEmail(name, code string) (html, text string) {
	data := otpTemplateData{Name: name, Code: code, Validity: otpValidity}

	var hb bytes.Buffer
	if err := otpHTMLTemplate.Execute(&hb, data); err != nil {
		panic(err)
	}

	var tb bytes.Buffer
	if err := otpTextTemplate.Execute(&tb, data); err != nil {
		panic(err)
	}

	return hb.String(), tb.String()
}
