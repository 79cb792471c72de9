package chip

import (
	"github.com/dhamidi/labeldecode/label"
	"github.com/dhamidi/labeldecode/label/combinator"
)

// Serial EEPROM labels read left to right as vendor, part, package,
// voltage class, date code and lot code.
const eepromEBNF = `
Label = Vendor " " Part [ Package ] [ Voltage ] " " Year Week [ " " Lot ] .
Vendor = "ROHM" | "XICOR" | "ATMEL" .
Part = ( "BR" | "X" | "AT" ) digit digit "C" digit digit .
Package = "F" | "N" | "P" | "S" .
Voltage = "-" ( "W" | "L" | "2.7" ) .
Year = digit .
Week = digit digit .
Lot = letter { letter | digit } .
digit = "0" … "9" .
letter = "A" … "Z" .
`

var eepromVendors = map[string]Manufacturer{
	"ROHM":  Rohm,
	"XICOR": Xicor,
	"ATMEL": Atmel,
}

func newEEPROMFamily() Family {
	serial := combinator.New(
		combinator.MustEBNF("eeprom.ebnf", eepromEBNF, "Label"),
		func(c label.Captures) (EEPROM, error) {
			d, err := label.Year1Week2(c.Name("Year"), c.Name("Week"))
			return EEPROM{
				Manufacturer: eepromVendors[c.Name("Vendor")],
				Part:         c.Name("Part") + c.Name("Package") + c.Name("Voltage"),
				Date:         d,
			}, err
		},
		combinator.WithName("serial"),
	)

	// 93LC46B 512 ABC
	microchip := label.NewGrammar(`
		(?P<part>93(?:LC|AA|C)(?:46|56|66)[AB]?)
		\ (?P<year>[0-9])(?P<week>[0-9]{2})
		(?:\ [A-Z0-9]{3})?
	`, func(c label.Captures) (EEPROM, error) {
		d, err := year1Week2(c)
		return EEPROM{Manufacturer: Microchip, Part: c.Name("part"), Date: d}, err
	}, label.Named("microchip"))

	return newFamily[EEPROM]("eeprom", serial, microchip)
}
