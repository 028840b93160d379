// Package vcard renders phonebook entries as vCard 3.0 text.
//
// Output follows RFC 2425/2426 as the modem stack has always produced it:
// CRLF terminated lines folded every 75 bytes with a single-space
// continuation prefix, and backslash escaping of free-text values only.
package vcard

import (
	"strings"

	"phonebookd/internal/phonebook/models"
)

// LineWidth is the fold column, counted in bytes.
const LineWidth = 75

const crlf = "\r\n"

// Encoder appends card blocks to an in-memory buffer. Call order is the
// caller's responsibility; the encoder never fails.
type Encoder struct {
	buf strings.Builder
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Begin writes the card header.
func (e *Encoder) Begin() {
	e.verbatim("BEGIN:VCARD")
	e.verbatim("VERSION:3.0")
}

// End writes the card footer followed by a blank line.
func (e *Encoder) End() {
	e.verbatim("END:VCARD")
	e.verbatim("")
}

// Name writes the formatted name.
func (e *Encoder) Name(text string) {
	e.folded("FN:" + Escape(text))
}

// Number writes a TEL line. Nothing is written for an empty number or a zero
// type code. International numbers gain a leading '+' in the rendered value.
func (e *Encoder) Number(number string, numberType int, category models.Category) {
	if number == "" || numberType == models.NumberTypeUnknown {
		return
	}
	intl := ""
	if numberType == models.NumberTypeInternational && number[0] != '+' {
		intl = "+"
	}
	e.folded("TEL;TYPE=" + category.Label() + ":" + intl + number)
}

// Group writes the CATEGORIES line when group is set.
func (e *Encoder) Group(group string) {
	if group == "" {
		return
	}
	e.folded("CATEGORIES:" + Escape(group))
}

func (e *Encoder) Email(email string) {
	if email == "" {
		return
	}
	e.folded("EMAIL;TYPE=INTERNET:" + Escape(email))
}

func (e *Encoder) SIPURI(uri string) {
	if uri == "" {
		return
	}
	e.folded("IMPP;TYPE=SIP:" + Escape(uri))
}

// WriteEntry renders an unmerged entry as its own card. The number stands in
// for the name when the entry has no display text.
func (e *Encoder) WriteEntry(entry models.RawEntry) {
	e.Begin()
	if entry.Text == "" {
		e.Name(entry.Number)
	} else {
		e.Name(entry.Text)
	}
	e.Number(entry.Number, entry.Type, models.CategoryOther)
	e.Number(entry.AdNumber, entry.AdType, models.CategoryOther)
	e.Group(entry.Group)
	e.Email(entry.Email)
	e.SIPURI(entry.SIPURI)
	e.End()
}

// WritePerson renders a merged person.
func (e *Encoder) WritePerson(p *models.PersonRecord) {
	e.Begin()
	e.Name(p.Text)
	for _, n := range p.Numbers {
		e.Number(n.Number, n.Type, n.Category)
	}
	e.Group(p.Group)
	e.Email(p.Email)
	e.SIPURI(p.SIPURI)
	e.End()
}

func (e *Encoder) String() string {
	return e.buf.String()
}

func (e *Encoder) Len() int {
	return e.buf.Len()
}

func (e *Encoder) verbatim(line string) {
	e.buf.WriteString(line)
	e.buf.WriteString(crlf)
}

func (e *Encoder) folded(line string) {
	e.buf.WriteString(Fold(line))
}

// Fold splits a logical line into LineWidth-byte chunks joined by CRLF and a
// single space, and terminates it with CRLF. An empty line stays one line.
func Fold(line string) string {
	var b strings.Builder
	b.Grow(len(line) + len(line)/LineWidth*3 + 2)
	for len(line) > LineWidth {
		b.WriteString(line[:LineWidth])
		b.WriteString(crlf + " ")
		line = line[LineWidth:]
	}
	b.WriteString(line)
	b.WriteString(crlf)
	return b.String()
}

// Escape backslash-escapes the characters RFC 2426 reserves in text values.
// Newline and carriage return become the two-character sequences \n and \r.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\n\r\\;,") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\\', ';', ',':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
