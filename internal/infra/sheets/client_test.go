package sheets

import (
	"testing"

	"appointment_reminder_bot/internal/domain/appointment"
)

func TestRowsToRecords_SkipsHeaderAndMapsColumns(t *testing.T) {
	rows := [][]interface{}{
		{"TIMESTAMP", "CODIGO", "NOMBRE", "TELEFONO", "EMAIL", "PROFESIONAL", "FECHA_CITA", "HORA_CITA", "SERVICIO", "ESTADO"},
		{"2024-05-30 10:00", "RES-1", "Ana Torres", "+573001112233", "ana@example.com", "Dra. Gómez", "2024-06-02", "08:30", "Limpieza dental", "AGENDADA"},
		{"2024-05-30 11:00", "RES-2", "Carlos Pérez", "+573004445566", "carlos@example.com", "Dr. Ruiz", "2024-06-02", "14:00", "Control", "CANCELADA"},
	}

	records := rowsToRecords(rows)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.ReservationCode != "RES-1" ||
		first.ClientName != "Ana Torres" ||
		first.ClientPhone != "+573001112233" ||
		first.ClientEmail != "ana@example.com" ||
		first.ProfessionalName != "Dra. Gómez" ||
		first.Date != "2024-06-02" ||
		first.Time != "08:30" ||
		first.ServiceName != "Limpieza dental" {
		t.Errorf("first record mapped wrong: %+v", first)
	}
	if first.Status != appointment.StatusScheduled {
		t.Errorf("first record status = %s, want %s", first.Status, appointment.StatusScheduled)
	}
	if records[1].Status != appointment.StatusCancelled {
		t.Errorf("second record status = %s, want %s", records[1].Status, appointment.StatusCancelled)
	}
}

func TestRowsToRecords_ShortRowsArePadded(t *testing.T) {
	rows := [][]interface{}{
		{"header"},
		{"2024-05-30", "RES-3", "Lucía Díaz"},
	}

	records := rowsToRecords(rows)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.ReservationCode != "RES-3" || rec.ClientName != "Lucía Díaz" {
		t.Errorf("record mapped wrong: %+v", rec)
	}
	if rec.Date != "" || rec.Time != "" {
		t.Errorf("missing cells should map to empty strings, got date=%q time=%q", rec.Date, rec.Time)
	}
	if rec.Status != appointment.StatusUnknown {
		t.Errorf("missing status should parse as unknown, got %s", rec.Status)
	}
	if rec.HasSchedule() {
		t.Error("padded record must not report a schedule")
	}
}

func TestRowsToRecords_HeaderOnlyAndEmpty(t *testing.T) {
	if got := rowsToRecords(nil); got != nil {
		t.Errorf("nil rows should yield nil, got %v", got)
	}
	if got := rowsToRecords([][]interface{}{{"only", "a", "header"}}); got != nil {
		t.Errorf("header-only sheet should yield nil, got %v", got)
	}
}

func TestCell_TrimsAndStringifies(t *testing.T) {
	row := []interface{}{"  padded  ", 42}
	if got := cell(row, 0); got != "padded" {
		t.Errorf("cell(0) = %q, want %q", got, "padded")
	}
	if got := cell(row, 1); got != "42" {
		t.Errorf("cell(1) = %q, want %q", got, "42")
	}
	if got := cell(row, 5); got != "" {
		t.Errorf("out-of-range cell = %q, want empty", got)
	}
}
