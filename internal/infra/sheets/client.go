// internal/infra/sheets/client.go
package sheets

import (
	"context"
	"fmt"
	"strings"

	"appointment_reminder_bot/internal/domain/appointment"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Column positions in the CLIENTES sheet. Column A holds the booking
// timestamp and is not consumed here.
const (
	colReservationCode = 1
	colClientName      = 2
	colClientPhone     = 3
	colClientEmail     = 4
	colProfessional    = 5
	colDate            = 6
	colTime            = 7
	colService         = 8
	colStatus          = 9
)

// Client reads appointment rows from a Google Sheets spreadsheet. It
// implements appointment.Repository.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	readRange     string
	logger        *logrus.Logger
}

// NewClient builds a read-only Sheets client authenticated with a service
// account credentials file.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, readRange string, logger *logrus.Logger) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		logger:        logger,
	}, nil
}

// FetchAll returns every appointment row currently in the sheet, header
// excluded. Any transport or auth failure comes back as a single wrapped
// error; the caller treats it as "zero appointments this poll".
func (c *Client) FetchAll(ctx context.Context) ([]appointment.Record, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment rows from sheet %s: %w", c.spreadsheetID, err)
	}

	records := rowsToRecords(resp.Values)
	c.logger.Debugf("Fetched %d appointment rows from sheet (range %s)", len(records), c.readRange)
	return records, nil
}

// rowsToRecords maps raw sheet rows into appointment records. The first row
// is the header. Short rows are padded with empty cells rather than dropped;
// the matcher decides what an incomplete record means.
func rowsToRecords(rows [][]interface{}) []appointment.Record {
	if len(rows) <= 1 {
		return nil
	}

	records := make([]appointment.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rawStatus := cell(row, colStatus)
		records = append(records, appointment.Record{
			ReservationCode:  cell(row, colReservationCode),
			ClientName:       cell(row, colClientName),
			ClientPhone:      cell(row, colClientPhone),
			ClientEmail:      cell(row, colClientEmail),
			ProfessionalName: cell(row, colProfessional),
			Date:             cell(row, colDate),
			Time:             cell(row, colTime),
			ServiceName:      cell(row, colService),
			Status:           appointment.ParseStatus(rawStatus),
			RawStatus:        rawStatus,
		})
	}
	return records
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, ok := row[idx].(string)
	if !ok {
		s = fmt.Sprint(row[idx])
	}
	return strings.TrimSpace(s)
}
