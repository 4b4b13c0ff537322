package sheets

import (
	"context"
	"errors"
	"fmt"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// AppendRegistration adds one row for the record, creating the sheet with its
// header row first if it does not exist yet.
func (c *Client) AppendRegistration(ctx context.Context, record registration.Record) error {
	sheetID, err := c.ensureSheet(ctx)
	if err != nil {
		return err
	}

	row := record.Row()
	err = c.appendRow(ctx, row)
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	err = c.autoResizeColumns(ctx, sheetID, len(row))
	if err != nil {
		return fmt.Errorf("failed to resize columns: %w", err)
	}

	return nil
}

func (c *Client) ensureSheet(ctx context.Context) (int64, error) {
	resp, err := c.srv.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to open spreadsheet %q: %w", c.spreadsheetID, err)
	}

	for _, s := range resp.Sheets {
		if s.Properties != nil && s.Properties.Title == c.sheetName {
			return s.Properties.SheetId, nil
		}
	}

	return c.createSheet(ctx)
}

func (c *Client) createSheet(ctx context.Context) (int64, error) {
	resp, err := c.batchUpdate(ctx, &sheetsv4.Request{
		AddSheet: &sheetsv4.AddSheetRequest{
			Properties: &sheetsv4.SheetProperties{Title: c.sheetName},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet %q: %w", c.sheetName, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return 0, errors.New("add sheet reply is missing the new sheet")
	}
	sheetID := resp.Replies[0].AddSheet.Properties.SheetId

	header := make([]interface{}, len(registration.Columns))
	for i, col := range registration.Columns {
		header[i] = col
	}

	headerRange := c.a1(fmt.Sprintf("A1:%s1", columnLetter(len(header))))
	_, err = c.srv.Spreadsheets.Values.Update(c.spreadsheetID, headerRange, &sheetsv4.ValueRange{
		Values: [][]interface{}{header},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to write header row: %w", err)
	}

	_, err = c.batchUpdate(ctx, &sheetsv4.Request{
		RepeatCell: &sheetsv4.RepeatCellRequest{
			Range: &sheetsv4.GridRange{
				SheetId:          sheetID,
				StartRowIndex:    0,
				EndRowIndex:      1,
				StartColumnIndex: 0,
				EndColumnIndex:   int64(len(header)),
				ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
			},
			Cell: &sheetsv4.CellData{
				UserEnteredFormat: &sheetsv4.CellFormat{
					TextFormat: &sheetsv4.TextFormat{Bold: true},
				},
			},
			Fields: "userEnteredFormat.textFormat.bold",
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to format header row: %w", err)
	}

	return sheetID, nil
}

func (c *Client) appendRow(ctx context.Context, row []interface{}) error {
	vr := &sheetsv4.ValueRange{Values: [][]interface{}{row}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, c.a1("A:"+columnLetter(len(row))), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (c *Client) autoResizeColumns(ctx context.Context, sheetID int64, numColumns int) error {
	_, err := c.batchUpdate(ctx, &sheetsv4.Request{
		AutoResizeDimensions: &sheetsv4.AutoResizeDimensionsRequest{
			Dimensions: &sheetsv4.DimensionRange{
				SheetId:         sheetID,
				Dimension:       "COLUMNS",
				StartIndex:      0,
				EndIndex:        int64(numColumns),
				ForceSendFields: []string{"SheetId", "StartIndex"},
			},
		},
	})
	return err
}

func (c *Client) batchUpdate(ctx context.Context, requests ...*sheetsv4.Request) (*sheetsv4.BatchUpdateSpreadsheetResponse, error) {
	return c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
}
