package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"appointment_reminder_bot/internal/domain/appointment"
)

// Formatter renders the WhatsApp message bodies for each reminder tier.
// Email bodies are not rendered here; the email transport owns its own
// per-tier templates.
type Formatter struct {
	// BusinessAddress is appended as the footer of every message.
	BusinessAddress string
}

var spanishWeekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

var spanishMonths = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// FormatLongDate renders a "2006-01-02" date as the long Spanish form,
// e.g. "lunes, 2 de junio de 2025". Unparsable input is returned unchanged.
func FormatLongDate(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[d.Weekday()], d.Day(), spanishMonths[d.Month()], d.Year())
}

// FormatTimeTo12Hour converts a 24-hour "HH:MM" string to 12-hour form with
// an AM/PM suffix. Formatting is best-effort: anything that does not look
// like a time comes back unchanged.
func FormatTimeTo12Hour(timeStr string) string {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return timeStr
	}
	hour24, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeStr
	}
	minutes := parts[1]

	switch {
	case hour24 == 0:
		return fmt.Sprintf("12:%s AM", minutes)
	case hour24 < 12:
		return fmt.Sprintf("%d:%s AM", hour24, minutes)
	case hour24 == 12:
		return fmt.Sprintf("12:%s PM", minutes)
	default:
		return fmt.Sprintf("%d:%s PM", hour24-12, minutes)
	}
}

// ChatMessage renders the tier- and status-specific WhatsApp body for one
// eligible appointment.
func (f Formatter) ChatMessage(tier Tier, e Eligible) string {
	switch tier {
	case Tier24Hours:
		return f.message24h(e)
	case Tier12Hours:
		return f.message12h(e)
	case Tier15Minutes:
		return f.message15min(e)
	default:
		return ""
	}
}

const confirmOrRescheduleBlock = `⚠️ *¿Deseas confirmar tu asistencia?*

Responde con:
• 1️⃣ *CONFIRMAR* - Para confirmar tu asistencia
• 2️⃣ *REAGENDAR* - Si necesitas cambiar la fecha/hora`

const confirmedBlock = `✅ *Tu cita está confirmada*`

const urgentConfirmBlock = `⚠️ *¡IMPORTANTE! Tu cita aún no está confirmada*

Responde con:
• 1️⃣ *CONFIRMAR* - Para confirmar tu asistencia ahora`

func (f Formatter) message24h(e Eligible) string {
	return fmt.Sprintf(`🔔 *Recordatorio de Cita*

Hola *%s*,

Te recordamos que tienes una cita programada para *mañana*:

📅 *Fecha:* %s
⏰ *Hora:* %s
👨‍⚕️ *Con:* %s
🩺 *Servicio:* %s
🎟️ *Código:* %s

%s

📍 %s

¡Te esperamos! 🌟`,
		e.Record.ClientName,
		FormatLongDate(e.Record.Date),
		FormatTimeTo12Hour(e.Record.Time),
		e.Record.ProfessionalName,
		e.Record.ServiceName,
		e.Record.ReservationCode,
		confirmOrRescheduleBlock,
		f.BusinessAddress)
}

func (f Formatter) message12h(e Eligible) string {
	confirmation := confirmOrRescheduleBlock
	if e.Record.Status == appointment.StatusConfirmed {
		confirmation = confirmedBlock
	}
	return fmt.Sprintf(`🔔 *Recordatorio de Cita*

Hola *%s*,

Te recordamos que tienes una cita programada para *hoy*:

📅 *Fecha:* %s
⏰ *Hora:* %s
👨‍⚕️ *Con:* %s
🩺 *Servicio:* %s
🎟️ *Código:* %s

%s

📍 %s

¡Te esperamos! 🌟`,
		e.Record.ClientName,
		FormatLongDate(e.Record.Date),
		FormatTimeTo12Hour(e.Record.Time),
		e.Record.ProfessionalName,
		e.Record.ServiceName,
		e.Record.ReservationCode,
		confirmation,
		f.BusinessAddress)
}

func (f Formatter) message15min(e Eligible) string {
	confirmation := urgentConfirmBlock
	if e.Record.Status == appointment.StatusConfirmed {
		confirmation = confirmedBlock
	}
	return fmt.Sprintf(`⏰ *¡Tu cita es en 15 minutos!*

Hola *%s*,

Tu cita es en *15 minutos*:

⏰ *Hora:* %s
👨‍⚕️ *Con:* %s
🎟️ *Código:* %s

%s

📍 *Dirección:* %s

¡Te esperamos! 🌟`,
		e.Record.ClientName,
		FormatTimeTo12Hour(e.Record.Time),
		e.Record.ProfessionalName,
		e.Record.ReservationCode,
		confirmation,
		f.BusinessAddress)
}
