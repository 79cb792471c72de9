package chip

import "github.com/dhamidi/labeldecode/label"

func sram(name string, manufacturer Manufacturer, pattern string, date func(label.Captures) (label.DateCode, error)) *label.Grammar[SRAM] {
	return label.NewGrammar(pattern, func(c label.Captures) (SRAM, error) {
		d, err := date(c)
		return SRAM{Manufacturer: manufacturer, Part: c.Name("part"), Date: d}, err
	}, label.Named(name))
}

func year1Week2(c label.Captures) (label.DateCode, error) {
	return label.Year1Week2(c.Name("year"), c.Name("week"))
}

func year2Week2(c label.Captures) (label.DateCode, error) {
	return label.Year2Week2(c.Name("year"), c.Name("week"))
}

func newSRAMFamily() Family {
	return newFamily[SRAM]("sram",
		// LH5264N4T LSI LOGIC JAPAN D4 06 05 C
		sram("lsi-logic-year1", LSILogic, `
			(?P<part>LH52(?:64|A64|256)N[0-9A-Z]{1,3})
			\ LSI\ LOGIC\ JAPAN
			\ D(?P<year>[0-9])\ (?P<week>[0-9]{2})\ [0-9]{2}\ [A-Z]
		`, year1Week2),
		// LH52A64N-YL LSI LOGIC JAPAN D9912 2 E
		sram("lsi-logic-year2", LSILogic, `
			(?P<part>LH52(?:64|A64|256)N-?[0-9A-Z]{1,3})
			\ LSI\ LOGIC\ JAPAN
			\ D(?P<year>[0-9]{2})(?P<week>[0-9]{2})\ [0-9]\ [A-Z]
		`, year2Week2),
		// SHARP JAPAN LH5264TN-L 8951 7 A
		sram("sharp", Sharp, `
			SHARP\ JAPAN
			\ (?P<part>LH52(?:64|A64|256)[0-9A-Z]{1,3}(?:-[A-Z]{1,2})?)
			\ (?P<year>[0-9]{2})(?P<week>[0-9]{2})\ [0-9]\ [A-Z]{1,2}
		`, year2Week2),
		// HYUNDAI GM76C256CLLFW70 9645 KOREA
		sram("hyundai", Hyundai, `
			HYUNDAI
			\ (?P<part>GM76C256C[0-9A-Z]{2,6})
			\ (?P<year>[0-9]{2})(?P<week>[0-9]{2})
			(?:\ KOREA)?
		`, year2Week2),
		// Winbond W24257AS-35LL 9808ASA 2170
		sram("winbond", Winbond, `
			Winbond
			\ (?P<part>W24257AS-(?:35|70)L{0,2})
			\ (?P<year>[0-9]{2})(?P<week>[0-9]{2})[A-Z]{2,3}
			\ [0-9]{4}
		`, year2Week2),
		// BSI BS62LV256SC-70 S2827W 0218
		sram("bsi", BSI, `
			BSI
			\ (?P<part>BS62LV256[A-Z]{2}-?[0-9]{2})
			\ [A-Z][0-9]{4}[A-Z]
			\ (?P<year>[0-9]{2})(?P<week>[0-9]{2})
		`, year2Week2),
	)
}
