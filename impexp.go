package folio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains the CSV interchange format shared by import and
// export. One schema definition drives both directions so the column sets
// cannot drift apart.

// csvColumns is the canonical ordered column list. Import accepts any
// column order (headers are matched case-insensitively) but export always
// writes this order.
var csvColumns = []string{
	"name", "category", "quantity", "cost", "currency",
	"currentPrice", "riskLevel", "strategy", "sentiment", "tags", "note",
}

// csvTagSeparator joins tags in the tags column. Pipe keeps the column
// free of the record separator; commas are still accepted on import for
// old exports.
const csvTagSeparator = "|"

// ExportCSV writes the holdings as CSV with the canonical column order.
// Fields containing separators or quotes are escaped by the csv writer
// (RFC 4180, doubled quotes).
func ExportCSV(w io.Writer, holdings []Holding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, h := range holdings {
		price := ""
		if h.CurrentPrice != nil {
			price = strconv.FormatFloat(*h.CurrentPrice, 'f', -1, 64)
		}
		record := []string{
			h.Name,
			string(h.Category),
			strconv.FormatFloat(h.Quantity, 'f', -1, 64),
			strconv.FormatFloat(h.TotalCost, 'f', -1, 64),
			h.Currency,
			price,
			string(h.RiskLevel),
			h.Strategy,
			h.Sentiment,
			strings.Join(h.Tags, csvTagSeparator),
			h.Note,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv record %q: %w", h.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads CSV text into save inputs, one per data row. The header
// row names the columns; unknown columns are ignored and missing ones
// default to empty. Numeric fields coerce to 0 when non-numeric, matching
// the validation path which then rejects them with a field error.
func ParseCSV(r io.Reader) ([]Input, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may be ragged, missing cells are empty
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var inputs []Input
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read csv row %d: %w", len(inputs)+2, err)
		}
		cell := func(name string) string {
			i, ok := index[strings.ToLower(name)]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		in := Input{
			Name:      cell("name"),
			Category:  cell("category"),
			Quantity:  coerceFloat(cell("quantity")),
			TotalCost: coerceFloat(firstNonEmpty(cell("cost"), cell("totalCost"))),
			Currency:  cell("currency"),
			RiskLevel: cell("riskLevel"),
			Strategy:  cell("strategy"),
			Sentiment: cell("sentiment"),
			Tags:      SplitTags(cell("tags")),
			Note:      cell("note"),
		}
		if price := cell("currentPrice"); price != "" {
			p := coerceFloat(price)
			in.CurrentPrice = &p
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// coerceFloat parses a number, coercing non-numeric input to 0.
func coerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
