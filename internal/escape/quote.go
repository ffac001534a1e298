// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package escape

// Quote appends the double-quoted encoding of data to dst, including the
// surrounding quotation marks, applying hints to choose among the
// equivalent encodings of LF and TAB (spec.md §4.8). It does not decide
// whether quoting is needed at all — callers that may emit an unquoted
// literal instead should check that eligibility themselves.
func Quote(dst []byte, data []byte, hints Hints) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(data); {
		b := data[i]
		switch b {
		case '\t':
			if hints.TabOctal {
				dst = append(dst, '\\', '0', '1', '1')
			} else {
				dst = append(dst, b)
			}
			i++
		case '\\':
			dst = append(dst, '\\', '\\')
			i++
		case '"':
			dst = append(dst, '\\', '"')
			i++
		case '\r':
			dst = appendLineFeedEscape(dst, hints)
			if i+1 < len(data) && data[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		case '\n':
			dst = appendLineFeedEscape(dst, hints)
			i++
		default:
			dst = append(dst, b)
			i++
		}
	}
	return append(dst, '"')
}

func appendLineFeedEscape(dst []byte, hints Hints) []byte {
	switch hints.LineFeed {
	case LineFeedNamed:
		return append(dst, '\\', 'n')
	case LineFeedLiteral:
		return append(dst, '\\', '\n')
	case LineFeedOctal:
		return append(dst, '\\', '0', '1', '2')
	default:
		return append(dst, '\n')
	}
}
