// Package merge groups raw phonebook entries into logical persons.
//
// SIM phonebooks have no notion of a contact with several numbers, so handsets
// store alternates as separate entries whose names carry a category suffix:
// "Bob/h", "Bob/m". Entries sharing the same name before the suffix become one
// person. Entries without a suffix are never grouped.
package merge

import "phonebookd/internal/phonebook/models"

// CardWriter receives the rendered output of the engine.
type CardWriter interface {
	WriteEntry(entry models.RawEntry)
	WritePerson(person *models.PersonRecord)
}

// Engine holds the persons opened during one export pass. Groups are kept
// both in first-seen order and indexed by stripped name; matching is exact on
// the stripped name, never on the number.
type Engine struct {
	out     CardWriter
	persons []*models.PersonRecord
	byText  map[string]*models.PersonRecord
}

func New(out CardWriter) *Engine {
	return &Engine{
		out:    out,
		byText: make(map[string]*models.PersonRecord),
	}
}

// Observe takes one entry in arrival order. Unmarked entries are written to
// the CardWriter immediately; marked ones extend or open a person.
func (e *Engine) Observe(entry models.RawEntry) {
	if entry.IsEmpty() {
		return
	}

	base, marker, ok := entry.MergeMarker()
	if !ok {
		e.out.WriteEntry(entry)
		return
	}

	// "/h" alone yields an empty base name; it is still a valid key.
	person, found := e.byText[base]
	if !found {
		person = &models.PersonRecord{Text: base}
		e.byText[base] = person
		e.persons = append(e.persons, person)
	}

	category := models.CategoryFromMarker(marker)
	person.AddNumber(entry.Number, entry.Type, category)
	person.AddNumber(entry.AdNumber, entry.AdType, category)
	person.MergeFields(entry.Group, entry.Email, entry.SIPURI)
}

// Open returns the number of persons currently being assembled.
func (e *Engine) Open() int {
	return len(e.persons)
}

// Flush writes every open person in the order it was first seen, clears the
// engine and returns the persons written.
func (e *Engine) Flush() []*models.PersonRecord {
	flushed := e.persons
	for _, p := range flushed {
		e.out.WritePerson(p)
	}
	e.persons = nil
	e.byText = make(map[string]*models.PersonRecord)
	return flushed
}
