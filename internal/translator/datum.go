package translator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Input patterns of the dates in a document row, in SimpleDateFormat notation
// as they appear in translation configurations.
const (
	CreatiedatumPattern     = "yyyy-MM-dd'T'HH:mm:ss"
	RegistratiedatumPattern = "yyyy-MM-dd HH:mm:ss"
)

// StUFDateLayout is the compact StUF date.
const StUFDateLayout = "20060102"

// patternTokens maps pattern letters to a fixed width layout for formatting
// and to a layout that also accepts unpadded numbers for parsing.
var patternTokens = []struct{ token, layout, parse string }{
	{"yyyy", "2006", "2006"},
	{"yy", "06", "06"},
	{"MM", "01", "1"},
	{"dd", "02", "2"},
	{"HH", "15", "15"},
	{"mm", "04", "4"},
	{"ss", "05", "5"},
	{"SSS", "000", "000"},
}

// NormalizeDate parses raw in pattern and formats it as yyyyMMdd. Numeric
// fields may be unpadded and text after the pattern is ignored, so
// 2021-5-3T10:00:00 and a timestamp with fractional seconds or a zone both
// parse. On failure raw is returned unchanged together with the error.
func NormalizeDate(pattern, raw string) (string, error) {
	layout, err := convertPattern(pattern, true)
	if err != nil {
		return raw, err
	}
	t, err := time.Parse(layout, raw)
	var perr *time.ParseError
	if errors.As(err, &perr) && perr.LayoutElem == "" && perr.ValueElem != "" {
		t, err = time.Parse(layout, strings.TrimSuffix(raw, perr.ValueElem))
	}
	if err != nil {
		return raw, fmt.Errorf("parse %q as %q: %w", raw, pattern, err)
	}
	return t.Format(StUFDateLayout), nil
}

// layoutFor converts the supported subset of SimpleDateFormat letters into a
// fixed width Go layout.
func layoutFor(pattern string) (string, error) {
	return convertPattern(pattern, false)
}

func convertPattern(pattern string, parse bool) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		ch := pattern[i]
		if ch == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return "", fmt.Errorf("unterminated quote in date pattern %q", pattern)
			}
			if end == 0 {
				b.WriteByte('\'')
			} else {
				b.WriteString(pattern[i+1 : i+1+end])
			}
			i += end + 2
			continue
		}
		if !isPatternLetter(ch) {
			b.WriteByte(ch)
			i++
			continue
		}
		matched := false
		for _, tok := range patternTokens {
			if strings.HasPrefix(pattern[i:], tok.token) {
				if parse {
					b.WriteString(tok.parse)
				} else {
					b.WriteString(tok.layout)
				}
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("unsupported letter %q in date pattern %q", ch, pattern)
		}
	}
	return b.String(), nil
}

func isPatternLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
