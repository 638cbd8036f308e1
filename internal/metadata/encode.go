package metadata

import (
	"bytes"
	"io"
	"strconv"
)

// Canonical serialization: keys in fixed document order, ", " and ": "
// separators, ASCII-only strings. The byte layout is what earlier runs of
// the tool produced, so digests stay comparable across runs.

const hexDigits = "0123456789abcdef"

// Encode returns the canonical bytes of d.
func Encode(d Document) []byte {
	var buf bytes.Buffer
	buf.Grow(512)
	e := encoder{buf: &buf}
	e.document(d)
	return buf.Bytes()
}

// WriteTo writes the canonical bytes of d to w.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(Encode(d))
	return int64(n), err
}

type encoder struct {
	buf *bytes.Buffer
}

func (e encoder) key(name string, first bool) {
	if !first {
		e.buf.WriteString(", ")
	}
	e.string(name)
	e.buf.WriteString(": ")
}

func (e encoder) document(d Document) {
	e.buf.WriteByte('{')
	e.key("format", true)
	e.string(d.Format)
	e.key("name", false)
	e.string(d.Name)
	e.key("description", false)
	e.string(d.Description)
	e.key("miniting_tool", false)
	e.string(d.MintingTool)
	e.key("sensitive_content", false)
	if d.SensitiveContent.Present {
		e.string(d.SensitiveContent.Value)
	} else {
		e.buf.WriteString("false")
	}
	e.key("series_number", false)
	e.string(d.SeriesNumber)
	e.key("series_total", false)
	e.buf.WriteString(strconv.Itoa(d.SeriesTotal))
	e.key("attributes", false)
	e.attributes(d.Attributes)
	e.key("collection", false)
	e.collection(d.Collection)
	e.buf.WriteByte('}')
}

func (e encoder) attributes(a Attributes) {
	e.buf.WriteByte('[')
	if a.fallback {
		e.string(a.raw)
	} else {
		for i, attr := range a.entries {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			e.buf.WriteByte('{')
			e.key("trait_type", true)
			e.string(attr.TraitType)
			e.key("value", false)
			e.string(attr.Value)
			e.buf.WriteByte('}')
		}
	}
	e.buf.WriteByte(']')
}

func (e encoder) collection(c Collection) {
	e.buf.WriteByte('{')
	e.key("name", true)
	e.string(c.Name)
	e.key("id", false)
	e.string(c.ID)
	e.key("attributes", false)
	e.buf.WriteByte('[')
	for i, attr := range c.Attributes {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.buf.WriteByte('{')
		e.key("type", true)
		e.string(attr.Type)
		e.key("value", false)
		e.string(attr.Value)
		e.buf.WriteByte('}')
	}
	e.buf.WriteByte(']')
	e.buf.WriteByte('}')
}

// string writes s as a quoted ASCII-only string. Printable ASCII passes
// through except '"' and '\\'; everything else is escaped, with runes above
// the BMP written as UTF-16 surrogate pairs.
func (e encoder) string(s string) {
	e.buf.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			e.buf.WriteString(`\"`)
		case r == '\\':
			e.buf.WriteString(`\\`)
		case r >= 0x20 && r <= 0x7e:
			e.buf.WriteByte(byte(r))
		case r == '\b':
			e.buf.WriteString(`\b`)
		case r == '\f':
			e.buf.WriteString(`\f`)
		case r == '\n':
			e.buf.WriteString(`\n`)
		case r == '\r':
			e.buf.WriteString(`\r`)
		case r == '\t':
			e.buf.WriteString(`\t`)
		case r > 0xffff:
			r -= 0x10000
			e.unicodeEscape(0xd800 + (r>>10)&0x3ff)
			e.unicodeEscape(0xdc00 + r&0x3ff)
		default:
			e.unicodeEscape(r)
		}
	}
	e.buf.WriteByte('"')
}

func (e encoder) unicodeEscape(r rune) {
	e.buf.WriteString(`\u`)
	e.buf.WriteByte(hexDigits[(r>>12)&0xf])
	e.buf.WriteByte(hexDigits[(r>>8)&0xf])
	e.buf.WriteByte(hexDigits[(r>>4)&0xf])
	e.buf.WriteByte(hexDigits[r&0xf])
}
