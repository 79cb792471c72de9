package chip

import "github.com/dhamidi/labeldecode/label"

func crystal(name string, manufacturer Manufacturer, pattern string, date func(label.Captures) (label.DateCode, error)) *label.Grammar[Crystal] {
	return label.NewGrammar(pattern, func(c label.Captures) (Crystal, error) {
		d, err := date(c)
		return Crystal{Manufacturer: manufacturer, Frequency: c.Name("freq"), Date: d}, err
	}, label.Named(name))
}

func year1MonthLetter(c label.Captures) (label.DateCode, error) {
	return label.Year1MonthLetter(c.Name("year"), c.Name("month"))
}

func year2Month2(c label.Captures) (label.DateCode, error) {
	return label.Year2Month2(c.Name("year"), c.Name("month"))
}

func year1Month1(c label.Captures) (label.DateCode, error) {
	y, err := label.DecodeYear1(c.Name("year"))
	if err != nil {
		return label.DateCode{}, err
	}
	m, err := label.DecodeMonth1(c.Name("month"))
	if err != nil {
		return label.DateCode{}, err
	}
	return label.DateCode{Year: y, Month: m}, nil
}

func newCrystalFamily() Family {
	return newFamily[Crystal]("crystal",
		// 4.194 KDS 9C
		crystal("kds-month-letter", KDS, `
			(?P<freq>4\.194|32\.768)\ KDS
			\ (?P<year>[0-9])(?P<month>[A-HJ-M])
		`, year1MonthLetter),
		// KDS 4.194 AL05
		crystal("kds-year2", KDS, `
			KDS\ (?P<freq>4\.194|32\.768)
			\ (?P<year>[0-9]{2}|A[LM])(?P<month>0[1-9]|1[0-2])
		`, year2Month2),
		// KDS 4.19 9A
		crystal("kds-month1", KDS, `
			KDS\ (?P<freq>4\.19|8\.38)
			\ (?P<year>[0-9])(?P<month>[1-9ABC])
		`, year1Month1),
		// KSS 4.1M 7K
		crystal("kss", KSS, `
			KSS\ (?P<freq>4\.1M|4\.19|8\.3M)
			\ (?P<year>[0-9])(?P<month>[A-HJ-M])
		`, year1MonthLetter),
	)
}
