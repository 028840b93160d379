// Package seed loads simulated SIM contents from YAML fixtures shared by the
// memory and redis drivers.
package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/validation"
)

const (
	// DefaultPIN2 is used for SIMs provisioned without an explicit PIN2.
	DefaultPIN2 = "1234"
	// DefaultFdnCapacity is the number of FDN records on a typical SIM.
	DefaultFdnCapacity = 10
	// MaxPIN2Attempts blocks PIN2 after this many consecutive mismatches.
	MaxPIN2Attempts = 3
)

// File is the top level of a seed document:
//
//	modems:
//	  - id: /modem0
//	    pin2: "4321"
//	    storages:
//	      SM:
//	        - {index: 1, number: "+4912345", type: 145, text: "Bob/h"}
//	    fdn:
//	      - {index: 1, name: "Police", number: "110"}
type File struct {
	Modems []SIM `yaml:"modems"`
}

// SIM describes the contents of one simulated SIM.
type SIM struct {
	ID          string                       `yaml:"id"`
	Vendor      string                       `yaml:"vendor"`
	PIN2        string                       `yaml:"pin2"`
	FdnCapacity int                          `yaml:"fdn_capacity"`
	Storages    map[string][]models.RawEntry `yaml:"storages"`
	Fdn         []models.FdnEntry            `yaml:"fdn"`
	// FailStorages lists storages whose enumeration always fails.
	FailStorages []string `yaml:"fail_storages"`
}

// Blank returns an empty SIM for modemID with default settings.
func Blank(modemID string) SIM {
	sim := SIM{ID: modemID}
	sim.applyDefaults()
	return sim
}

func (s *SIM) applyDefaults() {
	if s.PIN2 == "" {
		s.PIN2 = DefaultPIN2
	}
	if s.FdnCapacity <= 0 {
		s.FdnCapacity = DefaultFdnCapacity
	}
	if s.Storages == nil {
		s.Storages = map[string][]models.RawEntry{}
	}
	sort.Slice(s.Fdn, func(i, j int) bool { return s.Fdn[i].Index < s.Fdn[j].Index })
}

func (s SIM) validate() error {
	if s.ID == "" {
		return fmt.Errorf("modem id is required")
	}
	if !validation.PIN2(s.PIN2) {
		return fmt.Errorf("modem %s: invalid pin2", s.ID)
	}
	seen := make(map[int]bool, len(s.Fdn))
	for _, e := range s.Fdn {
		if e.Index < 1 || e.Index > s.FdnCapacity {
			return fmt.Errorf("modem %s: fdn index %d outside 1..%d", s.ID, e.Index, s.FdnCapacity)
		}
		if seen[e.Index] {
			return fmt.Errorf("modem %s: duplicate fdn index %d", s.ID, e.Index)
		}
		seen[e.Index] = true
	}
	return nil
}

// Fails reports whether enumeration of storage is configured to fail.
func (s SIM) Fails(storage string) bool {
	for _, f := range s.FailStorages {
		if f == storage {
			return true
		}
	}
	return false
}

// Decode parses a seed document and applies defaults to every SIM.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	ids := make(map[string]bool, len(f.Modems))
	for i := range f.Modems {
		f.Modems[i].applyDefaults()
		if err := f.Modems[i].validate(); err != nil {
			return nil, err
		}
		if ids[f.Modems[i].ID] {
			return nil, fmt.Errorf("duplicate modem %s", f.Modems[i].ID)
		}
		ids[f.Modems[i].ID] = true
	}
	return &f, nil
}

// Load reads a seed file from disk.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Lookup returns the SIM for modemID.
func (f *File) Lookup(modemID string) (SIM, bool) {
	if f == nil {
		return SIM{}, false
	}
	for _, m := range f.Modems {
		if m.ID == modemID {
			return m, true
		}
	}
	return SIM{}, false
}
