// Package rtf implements the lossy plain-text codec for Scrivener document
// bodies and notes. Encode produces a minimal document Scrivener accepts;
// Decode tolerantly extracts text from documents written by Scrivener
// itself, which use a much richer vocabulary than the encoder emits.
package rtf

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/scrivtools/scriv"
	"golang.org/x/text/encoding/charmap"
)

// Envelope for generated documents. Close enough to what Scrivener writes
// on macOS that it adopts the file on next open.
const (
	header = "{\\rtf1\\ansi\\ansicpg1252\\uc0\\cocoartf2761\n" +
		"{\\fonttbl\\f0\\froman\\fcharset0 TimesNewRomanPSMT;}\n" +
		"{\\colortbl;\\red255\\green255\\blue255;}\n" +
		"\\margl1440\\margr1440\\vieww12240\\viewh15840\\viewkind0\n" +
		"\\pard\\pardeftab720\\pardirnatural\\partightenfactor0\n" +
		"\n" +
		"\\f0\\fs24 \\cf0 "
	footer = "}"
)

// Encode wraps plain text in an RTF envelope. Backslashes and braces are
// escaped, a double line break becomes a paragraph break, and any remaining
// single line break becomes a line break. Non-ASCII characters go out as
// numeric escapes so the document stays single-byte clean. The result is a
// complete document even for empty text.
func Encode(text string) []byte {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(header) + len(text) + len(text)/4 + len(footer))
	b.WriteString(header)

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\\', '{', '}':
			b.WriteByte('\\')
			b.WriteByte(byte(r))
		case '\n':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				b.WriteString("\\par\n")
				i++
			} else {
				b.WriteString("\\line\n")
			}
		default:
			if r < 0x80 || r > 0xFFFF {
				// ASCII as-is; the rare rune beyond the basic plane has
				// no single \u escape and is left in UTF-8
				b.WriteRune(r)
			} else {
				n := int(r)
				if n > 32767 {
					n -= 65536
				}
				b.WriteString("\\u")
				b.WriteString(strconv.Itoa(n))
				b.WriteByte(' ')
			}
		}
	}

	b.WriteString(footer)
	return []byte(b.String())
}

// Decode extracts plain text from an RTF document, trimmed of leading and
// trailing whitespace. Empty input decodes to "" without error.
//
// Malformed input returns EUNDECODABLE. The bytes on disk stay untouched in
// that case, so callers may degrade to empty text without losing data.
func Decode(data []byte) (string, error) {
	src := string(data)
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	if !strings.HasPrefix(strings.TrimSpace(src), "{") {
		return "", scriv.Errorf(scriv.EUNDECODABLE, "not an rtf document")
	}

	d := &decoder{src: src, skipUntil: -1, fallbackLen: 1}
	if err := d.run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(d.out.String()), nil
}

// Destination groups holding formatting metadata rather than document text.
var skipDestinations = map[string]bool{
	"fonttbl":           true,
	"colortbl":          true,
	"expandedcolortbl":  true,
	"stylesheet":        true,
	"listtable":         true,
	"listoverridetable": true,
	"info":              true,
	"pict":              true,
	"themedata":         true,
	"header":            true,
	"footer":            true,
}

type decoder struct {
	src string
	pos int
	out strings.Builder

	depth       int
	skipUntil   int // group depth where an ignored destination began, -1 when inactive
	fallbackLen int // chars following \uN that repeat it for old readers
	pendingSkip int
}

func (d *decoder) run() error {
	for d.pos < len(d.src) {
		switch c := d.src[d.pos]; c {
		case '{':
			d.depth++
			d.pos++
		case '}':
			d.depth--
			if d.depth < 0 {
				return scriv.Errorf(scriv.EUNDECODABLE, "unbalanced group at byte %d", d.pos)
			}
			if d.skipUntil >= 0 && d.depth < d.skipUntil {
				d.skipUntil = -1
			}
			d.pos++
		case '\\':
			if err := d.control(); err != nil {
				return err
			}
		case '\r', '\n':
			// raw newlines in the source carry no text
			d.pos++
		default:
			r, size := utf8.DecodeRuneInString(d.src[d.pos:])
			d.text(r)
			d.pos += size
		}
	}

	if d.depth != 0 {
		return scriv.Errorf(scriv.EUNDECODABLE, "unterminated group")
	}
	return nil
}

// control handles the escape sequence starting at d.pos.
func (d *decoder) control() error {
	if d.pos+1 >= len(d.src) {
		return scriv.Errorf(scriv.EUNDECODABLE, "dangling escape at end of input")
	}

	switch c := d.src[d.pos+1]; {
	case c == '\\' || c == '{' || c == '}':
		d.text(rune(c))
		d.pos += 2
	case c == '\'':
		if d.pos+4 > len(d.src) {
			return scriv.Errorf(scriv.EUNDECODABLE, "truncated hex escape at byte %d", d.pos)
		}
		b, err := strconv.ParseUint(d.src[d.pos+2:d.pos+4], 16, 8)
		if err != nil {
			return scriv.Errorf(scriv.EUNDECODABLE, "bad hex escape at byte %d", d.pos)
		}
		d.text(charmap.Windows1252.DecodeByte(byte(b)))
		d.pos += 4
	case c == '\n' || c == '\r':
		// escaped newline, equivalent to \par
		d.emit("\n\n")
		d.pos += 2
	case c == '~':
		d.text('\u00a0')
		d.pos += 2
	case c == '-' || c == '_':
		// optional and nonbreaking hyphen markers
		d.pos += 2
	case c == '*':
		if d.skipUntil < 0 {
			d.skipUntil = d.depth
		}
		d.pos += 2
	case isLetter(c):
		d.controlWord()
	default:
		// unknown control symbol
		d.pos += 2
	}
	return nil
}

// controlWord consumes a control word, its optional numeric parameter, and
// the single space delimiter that may follow.
func (d *decoder) controlWord() {
	i := d.pos + 1
	start := i
	for i < len(d.src) && isLetter(d.src[i]) {
		i++
	}
	word := d.src[start:i]

	numStart := i
	if i < len(d.src) && (d.src[i] == '-' || isDigit(d.src[i])) {
		i++
		for i < len(d.src) && isDigit(d.src[i]) {
			i++
		}
	}
	param := d.src[numStart:i]

	if i < len(d.src) && d.src[i] == ' ' {
		i++
	}
	d.pos = i

	switch word {
	case "par", "sect", "page":
		d.emit("\n\n")
	case "line":
		d.emit("\n")
	case "tab":
		d.emit("\t")
	case "emdash":
		d.emit("\u2014")
	case "endash":
		d.emit("\u2013")
	case "bullet":
		d.emit("\u2022")
	case "lquote":
		d.emit("\u2018")
	case "rquote":
		d.emit("\u2019")
	case "ldblquote":
		d.emit("\u201c")
	case "rdblquote":
		d.emit("\u201d")
	case "emspace", "enspace", "qmspace":
		d.emit(" ")
	case "uc":
		if n, err := strconv.Atoi(param); err == nil && n >= 0 {
			d.fallbackLen = n
		}
	case "u":
		n, err := strconv.Atoi(param)
		if err != nil {
			return
		}
		if n < 0 {
			n += 65536
		}
		if d.skipUntil < 0 && d.pendingSkip == 0 {
			d.out.WriteRune(rune(n))
		}
		d.pendingSkip += d.fallbackLen
	default:
		if skipDestinations[word] && d.skipUntil < 0 {
			d.skipUntil = d.depth
		}
	}
}

// text emits one document character, honoring destination skipping and
// unicode fallback consumption.
func (d *decoder) text(r rune) {
	if d.skipUntil >= 0 {
		return
	}
	if d.pendingSkip > 0 {
		d.pendingSkip--
		return
	}
	d.out.WriteRune(r)
}

// emit writes marker-derived text, which is never a unicode fallback.
func (d *decoder) emit(s string) {
	if d.skipUntil >= 0 {
		return
	}
	d.out.WriteString(s)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
