package chip

import "github.com/dhamidi/labeldecode/label"

func cpu(name, pattern string) *label.Grammar[CPU] {
	return label.NewGrammar(pattern, func(c label.Captures) (CPU, error) {
		d, err := year2Week2(c)
		return CPU{Manufacturer: Sharp, Kind: c.Name("kind"), Date: d}, err
	}, label.Named(name))
}

func newCPUFamily() Family {
	return newFamily[CPU]("cpu",
		// DMG-CPU B © 1989 Nintendo JAPAN 9235 D
		cpu("dmg", `
			(?P<kind>DMG-CPU(?:\ [A-E])?)
			\ ©\ 1989\ Nintendo\ JAPAN
			\ (?P<year>[0-9]{2})(?P<week>[0-9]{2})\ [A-Z]
		`),
		// CPU CGB-C © 1998 Nintendo JAPAN 9908 J
		cpu("mgb-cgb", `
			(?P<kind>CPU\ (?:MGB|CGB(?:-[A-E])?))
			\ ©\ (?:1989|1998)\ Nintendo\ JAPAN
			\ (?P<year>[0-9]{2})(?P<week>[0-9]{2})\ [A-Z]
		`),
		// CPU AGB A © 2001 Nintendo JAPAN ARM 0124 I
		cpu("agb", `
			(?P<kind>CPU\ AGB(?:\ [A-E])?)
			\ ©\ 2001\ Nintendo\ JAPAN\ ARM
			\ (?P<year>[0-9]{2})(?P<week>[0-9]{2})\ [A-Z]
		`),
	)
}
