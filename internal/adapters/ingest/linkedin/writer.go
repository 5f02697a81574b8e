package linkedin

import (
	"encoding/csv"
	"io"
	"strconv"

	"linkpulse/internal/core/aggregate"
	perr "linkpulse/internal/platform/errors"
)

// WriteShares emits repaired share records as a well-quoted CSV
// Columns are reduced to what the aggregation layer consumes, url presence
// is written as a boolean since the original addresses are not retained
func WriteShares(w io.Writer, shares []aggregate.Share) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "ShareCommentary", "HasSharedUrl", "HasMediaUrl"}); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write csv header")
	}
	for _, s := range shares {
		row := []string{
			s.Timestamp,
			s.Text,
			strconv.FormatBool(s.HasSharedURL),
			strconv.FormatBool(s.HasMediaURL),
		}
		if err := cw.Write(row); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "write csv row")
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComments emits repaired comment records as a well-quoted CSV
func WriteComments(w io.Writer, comments []aggregate.Comment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Message"}); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write csv header")
	}
	for _, c := range comments {
		if err := cw.Write([]string{c.Timestamp, c.Text}); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "write csv row")
		}
	}
	cw.Flush()
	return cw.Error()
}
