package chip

import (
	"github.com/dhamidi/labeldecode/label"
	c "github.com/dhamidi/labeldecode/label/combinator"
)

// romCode matches a program identifier such as DMG-AWJ-0 or CGB-BXTJ-0.
var romCode = c.Capture("code", c.Seq(
	c.Alt(c.Tag("DMG-"), c.Tag("CGB-")),
	c.Alt(c.AlphaNum(4), c.AlphaNum(3)),
	c.Tag("-"),
	c.Digits(1),
))

func maskROM(name string, manufacturer Manufacturer, root c.Token, date func(label.Captures) (label.DateCode, error)) *c.Grammar[MaskROM] {
	return c.New(root, func(caps label.Captures) (MaskROM, error) {
		d, err := date(caps)
		return MaskROM{
			ROMCode:      caps.Name("code"),
			Manufacturer: manufacturer,
			Part:         caps.Name("part"),
			Date:         d,
		}, err
	}, c.WithName(name))
}

// Mask ROM labels are printed on three or four lines; the lines are joined
// with single spaces.
func newMaskROMFamily() Family {
	return newFamily[MaskROM]("mask-rom",
		// DMG-AWJ-0 / LH5308F5 / 9413 E
		maskROM("sharp", Sharp, c.Seq(
			romCode,
			c.Space(),
			c.Capture("part", c.Seq(c.Tag("LH53"), c.Digits(2), c.AlphaNum(2))),
			c.Space(),
			c.Capture("year", c.Digits(2)),
			c.Capture("week", c.Digits(2)),
			c.Space(),
			c.Letters(1),
			c.Opt(c.Digits(1)),
		), year2Week2),
		// DMG-AAUE-0 / MX23C8003-20 / M9934 / A12345
		maskROM("macronix", Macronix, c.Seq(
			romCode,
			c.Space(),
			c.Capture("part", c.Seq(c.Tag("MX23C"), c.Digits(4), c.Opt(c.Seq(c.Tag("-"), c.Digits(2))))),
			c.Space(),
			c.Letters(1),
			c.Capture("year", c.Digits(2)),
			c.Capture("week", c.Digits(2)),
			c.Opt(c.Seq(c.Space(), c.AlphaNum(6))),
		), year2Week2),
		// CGB-BXTJ-0 / OKI M534011-05 / 912A
		maskROM("oki", Oki, c.Seq(
			romCode,
			c.Space(),
			c.Tag("OKI"),
			c.Space(),
			c.Capture("part", c.Seq(c.Tag("M53"), c.Digits(4))),
			c.Tag("-"),
			c.AlphaNum(2),
			c.Space(),
			c.Capture("year", c.Digits(1)),
			c.Capture("week", c.Digits(2)),
			c.Letters(1),
		), year1Week2),
	)
}
