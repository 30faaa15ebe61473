// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

// StripComments removes // line comments and /* */ block comments from an
// annotated catalog document, leaving plain JSON behind.
//
// The scanner tracks JSON string boundaries, so comment delimiters inside a
// translated value ("see https://example.org" and friends) are left intact.
// Newlines are preserved so parse errors reported against the stripped text
// still point at the right line of the annotated document.
func StripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))

	const (
		code = iota
		inString
		lineComment
		blockComment
	)

	state := code

	for i := 0; i < len(data); i++ {
		c := data[i]

		switch state {
		case code:
			switch {
			case c == '"':
				state = inString

				out = append(out, c)
			case c == '/' && i+1 < len(data) && data[i+1] == '/':
				state = lineComment

				i++
			case c == '/' && i+1 < len(data) && data[i+1] == '*':
				state = blockComment

				i++
			default:
				out = append(out, c)
			}
		case inString:
			out = append(out, c)

			switch c {
			case '\\':
				// Copy the escaped character verbatim so \" does not
				// terminate the string.
				if i+1 < len(data) {
					i++

					out = append(out, data[i])
				}
			case '"':
				state = code
			}
		case lineComment:
			if c == '\n' {
				state = code

				out = append(out, c)
			}
		case blockComment:
			if c == '*' && i+1 < len(data) && data[i+1] == '/' {
				state = code

				i++
			} else if c == '\n' {
				out = append(out, c)
			}
		}
	}

	return out
}
