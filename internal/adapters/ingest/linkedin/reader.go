package linkedin

import (
	"encoding/csv"
	"io"
	"strings"

	"linkpulse/internal/core/aggregate"
	perr "linkpulse/internal/platform/errors"
)

// Shares.csv and Comments.csv column names as the exporter writes them
const (
	colDate            = "Date"
	colShareCommentary = "ShareCommentary"
	colSharedURL       = "SharedUrl"
	colMediaURL        = "MediaUrl"
	colMessage         = "Message"
)

// ReadShares parses a shares export into raw share records
// Rows are repaired but otherwise taken as-is, dropping unparseable
// timestamps is the aggregation layer's job not the reader's
func ReadShares(r io.Reader) ([]aggregate.Share, error) {
	rows, idx, err := readAll(r, []string{colDate, colShareCommentary, colSharedURL, colMediaURL})
	if err != nil {
		return nil, err
	}
	out := make([]aggregate.Share, 0, len(rows))
	for _, row := range rows {
		out = append(out, aggregate.Share{
			Timestamp:    strings.TrimSpace(field(row, idx[colDate])),
			Text:         CleanShareCommentary(field(row, idx[colShareCommentary])),
			HasSharedURL: CleanEmptyField(field(row, idx[colSharedURL])) != "",
			HasMediaURL:  CleanEmptyField(field(row, idx[colMediaURL])) != "",
		})
	}
	return out, nil
}

// ReadComments parses a comments export into raw comment records
func ReadComments(r io.Reader) ([]aggregate.Comment, error) {
	rows, idx, err := readAll(r, []string{colDate, colMessage})
	if err != nil {
		return nil, err
	}
	out := make([]aggregate.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, aggregate.Comment{
			Timestamp: strings.TrimSpace(field(row, idx[colDate])),
			Text:      CleanCommentMessage(field(row, idx[colMessage])),
		})
	}
	return out, nil
}

// readAll parses the CSV leniently and validates the required header set
func readAll(r io.Reader, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true    // exports carry broken quoting, repair later
	cr.FieldsPerRecord = -1 // ragged rows are tolerated
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse csv")
	}
	if len(records) == 0 {
		return nil, nil, perr.InvalidArgf("empty csv")
	}

	idx := map[string]int{}
	for i, name := range records[0] {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, perr.InvalidArgf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return records[1:], idx, nil
}

// field reads a column defensively, short rows yield the empty string
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
