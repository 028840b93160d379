package models

import (
	"strings"

	pbstrings "phonebookd/pkg/platform/strings"
)

// Number type codes as reported by the modem (3GPP TS 24.008 type of address).
const (
	NumberTypeUnknown       = 0
	NumberTypeLocal         = 129
	NumberTypeInternational = 145
)

// Storage identifiers understood by the modem drivers.
const (
	StorageSIM     = "SM"
	StorageHandset = "ME"
)

// DefaultStorages is the order in which backends are enumerated during export.
var DefaultStorages = []string{StorageSIM, StorageHandset}

// RawEntry is one phonebook record as delivered by a driver. It is consumed
// by the merge decision and never retained.
type RawEntry struct {
	Index      int    `json:"index" yaml:"index"`
	Number     string `json:"number" yaml:"number"`
	Type       int    `json:"type" yaml:"type"`
	Text       string `json:"text" yaml:"text"`
	Hidden     bool   `json:"hidden,omitempty" yaml:"hidden"`
	Group      string `json:"group,omitempty" yaml:"group"`
	AdNumber   string `json:"adnumber,omitempty" yaml:"adnumber"`
	AdType     int    `json:"adtype,omitempty" yaml:"adtype"`
	SecondText string `json:"second_text,omitempty" yaml:"second_text"`
	Email      string `json:"email,omitempty" yaml:"email"`
	SIPURI     string `json:"sip_uri,omitempty" yaml:"sip_uri"`
	TelURI     string `json:"tel_uri,omitempty" yaml:"tel_uri"`
}

// IsEmpty reports whether the entry has neither a number nor display text.
func (e RawEntry) IsEmpty() bool {
	return e.Number == "" && e.Text == ""
}

// MergeMarker returns the stripped base text and the marker letter when the
// display text ends in "/w", "/h", "/m", "/f" or "/o" (any case).
func (e RawEntry) MergeMarker() (base string, marker byte, ok bool) {
	n := len(e.Text)
	if n < 2 || e.Text[n-2] != '/' {
		return "", 0, false
	}
	c := lower(e.Text[n-1])
	switch c {
	case 'w', 'h', 'm', 'f', 'o':
		return e.Text[:n-2], c, true
	}
	return "", 0, false
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Category classifies a number within a merged person.
type Category int

const (
	CategoryHome Category = iota
	CategoryMobile
	CategoryFax
	CategoryWork
	CategoryOther
)

// CategoryFromMarker maps a merge marker letter to its category.
func CategoryFromMarker(c byte) Category {
	switch lower(c) {
	case 'w':
		return CategoryWork
	case 'h':
		return CategoryHome
	case 'm':
		return CategoryMobile
	case 'f':
		return CategoryFax
	default:
		return CategoryOther
	}
}

// Label returns the vCard TEL type list for the category.
func (c Category) Label() string {
	switch c {
	case CategoryHome:
		return "HOME,VOICE"
	case CategoryMobile:
		return "CELL,VOICE"
	case CategoryFax:
		return "FAX"
	case CategoryWork:
		return "WORK,VOICE"
	default:
		return "VOICE"
	}
}

func (c Category) String() string {
	switch c {
	case CategoryHome:
		return "home"
	case CategoryMobile:
		return "mobile"
	case CategoryFax:
		return "fax"
	case CategoryWork:
		return "work"
	default:
		return "other"
	}
}

// PersonNumber is one number attached to a merged person.
type PersonNumber struct {
	Number   string
	Type     int
	Category Category
}

// PersonRecord is a logical person assembled from every marker-suffixed entry
// sharing the same stripped display text.
type PersonRecord struct {
	Text    string
	Numbers []PersonNumber
	Group   string
	Email   string
	SIPURI  string
}

// AddNumber appends a number in discovery order. Empty numbers and zero
// types are skipped.
func (p *PersonRecord) AddNumber(number string, numberType int, category Category) {
	if number == "" || numberType == NumberTypeUnknown {
		return
	}
	p.Numbers = append(p.Numbers, PersonNumber{Number: number, Type: numberType, Category: category})
}

// MergeFields fills group, email and SIP URI that are still unset.
func (p *PersonRecord) MergeFields(group, email, sipURI string) {
	firstWins(&p.Group, group)
	firstWins(&p.Email, email)
	firstWins(&p.SIPURI, sipURI)
}

func firstWins(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

// ParseStorages splits a comma separated storage list. Names are upper-cased;
// blanks and repeats are dropped so a storage is never enumerated twice.
func ParseStorages(raw string) []string {
	return pbstrings.DedupeAndTrimUpper(strings.Split(raw, ","))
}
