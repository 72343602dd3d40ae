package contract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// RowToContract maps one flat, dot-path-keyed CSV row onto a ContractData.
// Each leaf is populated by direct lookup of its dot-path in the row. Boolean
// leaves accept "true", "yes" and "1" case-insensitively; anything else,
// including an absent column, is false. Enum leaves are passed through raw;
// Validate catches bad values afterwards. Columns that match no leaf are
// ignored; leaves with no column stay nil.
func RowToContract(row map[string]string) *ContractData {
	d := &ContractData{}
	for _, lf := range leaves {
		raw, ok := row[lf.Path]
		switch lf.Kind {
		case KindBool:
			lf.SetBool(d, ok && truthy(raw))
		default:
			if !ok {
				continue
			}
			if v := strings.TrimSpace(raw); v != "" {
				lf.SetString(d, &v)
			}
		}
	}
	return d
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// ParseRows reads a CSV file with a header row and returns one
// column-name-keyed map per data row.
func ParseRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, cell := range record {
			if i < len(header) {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// PropertyRow is one row of the simple property-batch upload format.
type PropertyRow struct {
	Line           int
	StreetAddress  string
	City           string
	ZipCode        string
	OwnerName      string
	MailingAddress string
	OfferPrice     string
}

// Required columns of the property-batch CSV format.
var propertyColumns = []string{
	"StreetAddress", "City", "ZipCode", "OwnerName", "MailingAddress", "OfferPrice",
}

// RowError records a failure isolated to one row of a batch. Line numbers are
// 1-based file lines, so the first data row is line 2.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ParsePropertyRows reads the simple property-batch CSV. Missing required
// columns fail the whole file; bad cells fail only their row and are reported
// alongside the good rows.
func ParsePropertyRows(r io.Reader) ([]PropertyRow, []RowError, error) {
	rows, err := ParseRows(r)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) > 0 {
		for _, col := range propertyColumns {
			if _, ok := rows[0][col]; !ok {
				return nil, nil, fmt.Errorf("missing required column %q", col)
			}
		}
	}

	var (
		parsed    []PropertyRow
		rowErrors []RowError
	)
	for i, row := range rows {
		line := i + 2
		pr := PropertyRow{
			Line:           line,
			StreetAddress:  strings.TrimSpace(row["StreetAddress"]),
			City:           strings.TrimSpace(row["City"]),
			ZipCode:        strings.TrimSpace(row["ZipCode"]),
			OwnerName:      strings.TrimSpace(row["OwnerName"]),
			MailingAddress: strings.TrimSpace(row["MailingAddress"]),
			OfferPrice:     strings.TrimSpace(row["OfferPrice"]),
		}
		if pr.StreetAddress == "" {
			rowErrors = append(rowErrors, RowError{Line: line, Message: "StreetAddress is empty"})
			continue
		}
		if pr.OwnerName == "" {
			rowErrors = append(rowErrors, RowError{Line: line, Message: "OwnerName is empty"})
			continue
		}
		parsed = append(parsed, pr)
	}
	return parsed, rowErrors, nil
}
