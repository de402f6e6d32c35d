package email

import (
	"html/template"
	"io"
	"strings"
)

// Message is one of the transactional emails the service knows how to render.
// The set is closed: only types in this package implement it.
type Message interface {
	Subject() string
	Kind() string
	render(w io.Writer) error
}

// UserWelcome greets a new beta user and carries the verification link
type UserWelcome struct {
	Name               string
	AdventureInterests []string
	VerificationLink   string
}

func (m UserWelcome) Subject() string { return "Welcome to Adventure Triangle! 🏔️" }
func (m UserWelcome) Kind() string    { return "user_welcome" }
func (m UserWelcome) render(w io.Writer) error {
	return userWelcomeTemplate.Execute(w, m)
}

// PartnerConfirmation acknowledges a partner application
type PartnerConfirmation struct {
	ContactPerson  string
	CompanyName    string
	BusinessType   string
	AdventureTypes []string
}

func (m PartnerConfirmation) Subject() string { return "Partner Application Received - Adventure Triangle" }
func (m PartnerConfirmation) Kind() string    { return "partner_confirmation" }
func (m PartnerConfirmation) render(w io.Writer) error {
	return partnerConfirmationTemplate.Execute(w, m)
}

// EventConfirmation confirms a launch event registration
type EventConfirmation struct {
	FullName     string
	AttendeeType string
	EventDate    string
	EventTime    string
	Location     string
}

func (m EventConfirmation) Subject() string {
	return "🎉 Launch Event Registration Confirmed - Adventure Triangle"
}
func (m EventConfirmation) Kind() string { return "event_confirmation" }
func (m EventConfirmation) render(w io.Writer) error {
	return eventConfirmationTemplate.Execute(w, m)
}

// PartnerStatusUpdate tells a partner their application status changed
type PartnerStatusUpdate struct {
	CompanyName string
	Status      string
}

func (m PartnerStatusUpdate) Subject() string {
	return "Partner Application " + strings.ToUpper(m.Status) + " - Adventure Triangle"
}
func (m PartnerStatusUpdate) Kind() string { return "partner_status_update" }
func (m PartnerStatusUpdate) render(w io.Writer) error {
	return partnerStatusUpdateTemplate.Execute(w, m)
}

// EventCancellation confirms that a registration was removed
type EventCancellation struct {
	FullName string
}

func (m EventCancellation) Subject() string { return "Event Registration Cancelled - Adventure Triangle" }
func (m EventCancellation) Kind() string    { return "event_cancellation" }
func (m EventCancellation) render(w io.Writer) error {
	return eventCancellationTemplate.Execute(w, m)
}

var funcs = template.FuncMap{
	"join": func(values []string) string { return strings.Join(values, ", ") },
	"humanize": func(s string) string {
		return strings.ReplaceAll(s, "_", " ")
	},
}

const baseStyle = `
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
.footer { text-align: center; margin-top: 30px; color: #777; font-size: 12px; }
`

var userWelcomeTemplate = template.Must(template.New("user_welcome").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<style>` + baseStyle + `
.header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
.button { background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block; margin: 20px 0; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>🏔️ Welcome to Adventure Triangle!</h1></div>
  <div class="content">
    <p>Hi {{.Name}},</p>
    <p>Welcome to the future of adventure travel! We're thrilled to have you join our community of adventurers.</p>
    <p><strong>Your Adventure Interests:</strong> {{join .AdventureInterests}}</p>
    <p>Get ready to explore water, air, and land adventures like never before. We'll keep you updated on:</p>
    <ul>
      <li>🌊 Exclusive adventure opportunities</li>
      <li>🎯 Early access to our platform launch</li>
      <li>🎉 Special events and community meetups</li>
      <li>💡 Adventure tips and inspiration</li>
    </ul>
    <p>Click below to verify your email and complete your registration:</p>
    <a href="{{.VerificationLink}}" class="button">Verify Email</a>
    <p><strong>#FeelTheAdventure</strong></p>
  </div>
  <div class="footer">
    <p>Adventure Triangle | Building the world's first global adventure ecosystem</p>
  </div>
</div>
</body>
</html>`))

var partnerConfirmationTemplate = template.Must(template.New("partner_confirmation").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<style>` + baseStyle + `
.header { background: linear-gradient(135deg, #f093fb 0%, #f5576c 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>🤝 Partner Application Received!</h1></div>
  <div class="content">
    <p>Hi {{.ContactPerson}},</p>
    <p>Thank you for your interest in becoming an Adventure Triangle partner!</p>
    <p><strong>Company:</strong> {{.CompanyName}}</p>
    <p><strong>Business Type:</strong> {{humanize .BusinessType}}</p>
    <p><strong>Adventure Types:</strong> {{join .AdventureTypes}}</p>
    <p>Our team will review your application and get back to you within 3-5 business days.</p>
    <p>Best regards,<br>Adventure Triangle Partnership Team</p>
  </div>
</div>
</body>
</html>`))

var eventConfirmationTemplate = template.Must(template.New("event_confirmation").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<style>` + baseStyle + `
.header { background: linear-gradient(135deg, #fa709a 0%, #fee140 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
.event-details { background: white; padding: 20px; border-left: 4px solid #fa709a; margin: 20px 0; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>🎉 You're Registered!</h1></div>
  <div class="content">
    <p>Hi {{.FullName}},</p>
    <p>Your registration for the Adventure Triangle Launch Event has been confirmed!</p>
    <div class="event-details">
      <h3>Event Details:</h3>
      <p><strong>Date:</strong> {{.EventDate}}</p>
      <p><strong>Time:</strong> {{.EventTime}}</p>
      <p><strong>Location:</strong> {{.Location}}</p>
      <p><strong>Your Role:</strong> {{.AttendeeType}}</p>
    </div>
    <p>We'll send you the event link and additional details closer to the date.</p>
    <p><strong>#FeelTheAdventure</strong></p>
  </div>
</div>
</body>
</html>`))

var partnerStatusUpdateTemplate = template.Must(template.New("partner_status_update").Parse(`<!DOCTYPE html>
<html>
<body>
  <h2>Partner Application Update</h2>
  <p>Hi {{.CompanyName}},</p>
  <p>Your partner application status has been updated to: <strong>{{.Status}}</strong></p>
  {{- if eq .Status "approved"}}
  <p>Congratulations! Welcome to the Adventure Triangle partner network.</p>
  {{- else if eq .Status "rejected"}}
  <p>Thank you for your interest. We encourage you to reapply in the future.</p>
  {{- end}}
  <p>Best regards,<br>Adventure Triangle Team</p>
</body>
</html>`))

var eventCancellationTemplate = template.Must(template.New("event_cancellation").Parse(`<!DOCTYPE html>
<html>
<body>
  <h2>Registration Cancelled</h2>
  <p>Hi {{.FullName}},</p>
  <p>Your registration for the Adventure Triangle Launch Event has been cancelled as requested.</p>
  <p>If this was a mistake, feel free to register again anytime.</p>
  <p>Best regards,<br>Adventure Triangle Team</p>
</body>
</html>`))
