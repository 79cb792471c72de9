// Package chip holds the label grammars of every supported component family
// and the process-wide registry that exposes them.
package chip

import (
	"github.com/dhamidi/labeldecode/label"
)

// Manufacturer names the company that made a component.
type Manufacturer string

const (
	Atmel     Manufacturer = "Atmel"
	BSI       Manufacturer = "BSI"
	Hyundai   Manufacturer = "Hyundai"
	KDS       Manufacturer = "KDS"
	KSS       Manufacturer = "KSS"
	LSILogic  Manufacturer = "LSI Logic"
	Macronix  Manufacturer = "Macronix"
	Microchip Manufacturer = "Microchip"
	Oki       Manufacturer = "OKI"
	Rohm      Manufacturer = "Rohm"
	Sharp     Manufacturer = "Sharp"
	Winbond   Manufacturer = "Winbond"
	Xicor     Manufacturer = "Xicor"
)

// Record is the family-independent view of a decoded label.
type Record struct {
	Family       string         `json:"family" yaml:"family"`
	Manufacturer Manufacturer   `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Part         string         `json:"part,omitempty" yaml:"part,omitempty"`
	Code         string         `json:"code,omitempty" yaml:"code,omitempty"`
	Date         label.DateCode `json:"-" yaml:"-"`
}

// Recorder is implemented by every family's result type.
type Recorder interface {
	Record() Record
}

// SRAM is a static RAM chip.
type SRAM struct {
	Manufacturer Manufacturer
	Part         string
	Date         label.DateCode
}

func (s SRAM) Record() Record {
	return Record{Manufacturer: s.Manufacturer, Part: s.Part, Date: s.Date}
}

// Crystal is a quartz crystal oscillator. Frequency is as printed.
type Crystal struct {
	Manufacturer Manufacturer
	Frequency    string
	Date         label.DateCode
}

func (c Crystal) Record() Record {
	return Record{Manufacturer: c.Manufacturer, Part: c.Frequency, Date: c.Date}
}

// CPU is a main processor. Its full year is the usual hint for the other
// components on a board.
type CPU struct {
	Manufacturer Manufacturer
	Kind         string
	Date         label.DateCode
}

func (c CPU) Record() Record {
	return Record{Manufacturer: c.Manufacturer, Part: c.Kind, Date: c.Date}
}

// MaskROM is a mask-programmed ROM. ROMCode identifies the program.
type MaskROM struct {
	ROMCode      string
	Manufacturer Manufacturer
	Part         string
	Date         label.DateCode
}

func (m MaskROM) Record() Record {
	return Record{Manufacturer: m.Manufacturer, Part: m.Part, Code: m.ROMCode, Date: m.Date}
}

// EEPROM is a serial EEPROM.
type EEPROM struct {
	Manufacturer Manufacturer
	Part         string
	Date         label.DateCode
}

func (e EEPROM) Record() Record {
	return Record{Manufacturer: e.Manufacturer, Part: e.Part, Date: e.Date}
}
