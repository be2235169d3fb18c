package catalog

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"advisor-backend/advisor/model"
)

// Vendor price sheets arrive as PDFs with one offer per line:
//
//	kind | name | price | days-to-value
//
// where price is "12/mo", "99/yr", "500" (one-time) or "3000-5000" (a hire
// quote range). Lines that don't parse are reported, not silently dropped.

// ImportResult is the outcome of parsing one price sheet.
type ImportResult struct {
	Entries []Entry  `json:"entries"`
	Skipped []string `json:"skipped,omitempty"`
}

// ImportPriceSheet extracts text from a vendor PDF price sheet and parses the
// offer lines into catalog entries for the given category. The entries are
// not persisted; the caller decides what to keep.
func ImportPriceSheet(data []byte, category, source string) (ImportResult, error) {
	text, err := extractPDFText(data)
	if err != nil {
		return ImportResult{}, fmt.Errorf("import price sheet: %w", err)
	}
	return ParsePriceSheet(text, category, source), nil
}

// ParsePriceSheet parses already-extracted price sheet text.
func ParsePriceSheet(text, category, source string) ImportResult {
	var result ImportResult
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseOfferLine(line, category, source)
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s: %v", line, err))
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result
}

func parseOfferLine(line, category, source string) (Entry, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		return Entry{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}
	kind := model.OptionKind(strings.ToLower(strings.TrimSpace(parts[0])))
	if !kind.Valid() {
		return Entry{}, fmt.Errorf("unknown kind %q", strings.TrimSpace(parts[0]))
	}
	name := strings.TrimSpace(parts[1])
	if name == "" {
		return Entry{}, fmt.Errorf("missing name")
	}
	days, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil || days < 0 {
		return Entry{}, fmt.Errorf("bad days-to-value %q", strings.TrimSpace(parts[3]))
	}

	opt := model.CandidateOption{Kind: kind, Name: name, TimeToValueDays: days}
	if err := parsePrice(strings.TrimSpace(parts[2]), &opt); err != nil {
		return Entry{}, err
	}
	return Entry{Category: strings.ToLower(strings.TrimSpace(category)), Option: opt, Source: source}, nil
}

func parsePrice(raw string, opt *model.CandidateOption) error {
	raw = strings.TrimPrefix(raw, "€")
	switch {
	case strings.HasSuffix(raw, "/mo"):
		amount, err := parseAmount(strings.TrimSuffix(raw, "/mo"))
		if err != nil {
			return err
		}
		opt.Cost = model.CostStructure{Recurring: amount, Cadence: model.CadenceMonthly}
	case strings.HasSuffix(raw, "/yr"):
		amount, err := parseAmount(strings.TrimSuffix(raw, "/yr"))
		if err != nil {
			return err
		}
		opt.Cost = model.CostStructure{Recurring: amount, Cadence: model.CadenceAnnual}
	case strings.Contains(raw, "-"):
		if opt.Kind != model.KindHire {
			return fmt.Errorf("price range only valid for hire offers")
		}
		bounds := strings.SplitN(raw, "-", 2)
		low, err := parseAmount(bounds[0])
		if err != nil {
			return err
		}
		high, err := parseAmount(bounds[1])
		if err != nil {
			return err
		}
		if high < low {
			return fmt.Errorf("inverted price range %q", raw)
		}
		opt.Cost = model.CostStructure{Cadence: model.CadenceOneTime}
		opt.Hire = &model.HireAttrs{CostLow: low, CostHigh: high}
	default:
		amount, err := parseAmount(raw)
		if err != nil {
			return err
		}
		opt.Cost = model.CostStructure{Upfront: amount, Cadence: model.CadenceOneTime}
	}
	return nil
}

func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "€"))
	raw = strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("bad amount %q", raw)
	}
	return amount, nil
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
