// internal/infra/email/sender.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"text/template"

	"appointment_reminder_bot/internal/domain/appointment"
	"appointment_reminder_bot/internal/domain/reminder"
)

// SMTPSender delivers reminder emails through a plain SMTP relay. It owns
// the per-tier subject and body templates; callers only hand it the eligible
// appointment.
type SMTPSender struct {
	addr            string
	from            string
	businessAddress string
}

func NewSMTPSender(host, port, from, businessAddress string) *SMTPSender {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@citas.local"
	}
	return &SMTPSender{
		addr:            fmt.Sprintf("%s:%s", host, port),
		from:            from,
		businessAddress: businessAddress,
	}
}

type templateData struct {
	ClientName       string
	ProfessionalName string
	ServiceName      string
	ReservationCode  string
	Date             string
	Time             string
	BusinessAddress  string
	Confirmed        bool
}

var subjects = map[reminder.Tier]string{
	reminder.Tier24Hours:   "Recordatorio: tu cita es mañana",
	reminder.Tier12Hours:   "Recordatorio: tu cita es hoy",
	reminder.Tier15Minutes: "¡Tu cita es en 15 minutos!",
}

var body24h = template.Must(template.New("24h").Parse(`Hola {{.ClientName}},

Te recordamos que tienes una cita programada para mañana:

Fecha: {{.Date}}
Hora: {{.Time}}
Con: {{.ProfessionalName}}
Servicio: {{.ServiceName}}
Código de reserva: {{.ReservationCode}}

Si deseas confirmar o reagendar tu cita, responde a este correo.

{{.BusinessAddress}}
`))

var body12h = template.Must(template.New("12h").Parse(`Hola {{.ClientName}},

Te recordamos que tienes una cita programada para hoy:

Fecha: {{.Date}}
Hora: {{.Time}}
Con: {{.ProfessionalName}}
Servicio: {{.ServiceName}}
Código de reserva: {{.ReservationCode}}
{{if .Confirmed}}
Tu cita está confirmada. ¡Te esperamos!
{{else}}
Si deseas confirmar o reagendar tu cita, responde a este correo.
{{end}}
{{.BusinessAddress}}
`))

var body15min = template.Must(template.New("15min").Parse(`Hola {{.ClientName}},

Tu cita es en 15 minutos:

Hora: {{.Time}}
Con: {{.ProfessionalName}}
Código de reserva: {{.ReservationCode}}
{{if not .Confirmed}}
Tu cita aún no está confirmada. Responde a este correo para confirmarla.
{{end}}
{{.BusinessAddress}}
`))

func bodyFor(tier reminder.Tier) *template.Template {
	switch tier {
	case reminder.Tier24Hours:
		return body24h
	case reminder.Tier12Hours:
		return body12h
	case reminder.Tier15Minutes:
		return body15min
	default:
		return nil
	}
}

// SendReminder renders the tier's template and mails it to the appointment's
// client address.
func (s *SMTPSender) SendReminder(_ context.Context, tier reminder.Tier, e reminder.Eligible) error {
	if e.Record.ClientEmail == "" {
		return fmt.Errorf("appointment %s has no client email", e.Record.ReservationCode)
	}
	tmpl := bodyFor(tier)
	if tmpl == nil {
		return fmt.Errorf("no email template for tier %s", tier)
	}

	data := templateData{
		ClientName:       e.Record.ClientName,
		ProfessionalName: e.Record.ProfessionalName,
		ServiceName:      e.Record.ServiceName,
		ReservationCode:  e.Record.ReservationCode,
		Date:             reminder.FormatLongDate(e.Record.Date),
		Time:             reminder.FormatTimeTo12Hour(e.Record.Time),
		BusinessAddress:  s.businessAddress,
		Confirmed:        e.Record.Status == appointment.StatusConfirmed,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render %s email body: %w", tier, err)
	}

	msg := buildMessage(s.from, e.Record.ClientEmail, subjects[tier], body.String())
	if err := smtp.SendMail(s.addr, nil, s.from, []string{e.Record.ClientEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", e.Record.ClientEmail, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
