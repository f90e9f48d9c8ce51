package playlist

import (
	"strconv"
	"strings"
)

type token struct {
	text   string
	num    uint64
	number bool
}

// tokenize splits s into lowercase text runs and decimal number runs. A
// number run too long for uint64 is dropped.
func tokenize(s string) []token {
	var (
		tokens []token
		text   strings.Builder
		digits strings.Builder
	)

	flushText := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{text: strings.ToLower(text.String())})
			text.Reset()
		}
	}
	flushNum := func() {
		if digits.Len() > 0 {
			if n, err := strconv.ParseUint(digits.String(), 10, 64); err == nil {
				tokens = append(tokens, token{num: n, number: true})
			}
			digits.Reset()
		}
	}

	for _, r := range s {
		if r >= '0' && r <= '9' {
			flushText()
			digits.WriteRune(r)
		} else {
			flushNum()
			text.WriteRune(r)
		}
	}
	flushText()
	flushNum()

	return tokens
}

func compareToken(a, b token) int {
	switch {
	case a.number && b.number:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case !a.number && !b.number:
		return strings.Compare(a.text, b.text)
	case !a.number:
		// Text sorts before numbers
		return -1
	default:
		return 1
	}
}

// Less reports whether a sorts before b in natural order, so "game2"
// comes before "game10".
func Less(a, b string) bool {
	ta, tb := tokenize(a), tokenize(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if c := compareToken(ta[i], tb[i]); c != 0 {
			return c < 0
		}
	}
	return len(ta) < len(tb)
}
