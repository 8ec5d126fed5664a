package zds

import "time"

// TijdstipLayout is the StUF tijdstipBericht format.
const TijdstipLayout = "20060102150405"

// Tijdstip formats t as a StUF tijdstip.
func Tijdstip(t time.Time) string {
	return t.Format(TijdstipLayout)
}

// ReplyStuurgegevens derives the header of a reply: zender and ontvanger are
// swapped, the reply gets its own referentienummer and points back at the
// vraag through crossRefnummer.
func ReplyStuurgegevens(vraag Stuurgegevens, referentienummer, tijdstip string) Stuurgegevens {
	return Stuurgegevens{
		Berichtcode:      vraag.Berichtcode,
		Zender:           vraag.Ontvanger,
		Ontvanger:        vraag.Zender,
		Referentienummer: referentienummer,
		TijdstipBericht:  tijdstip,
		CrossRefnummer:   vraag.Referentienummer,
		Entiteittype:     vraag.Entiteittype,
	}
}

// EchoParameters copies the parameters a La01 repeats from its Lv01.
func EchoParameters(p Parameters) Parameters {
	echo := Parameters{
		Sortering:             p.Sortering,
		IndicatorVervolgvraag: p.IndicatorVervolgvraag,
		MaximumAantal:         p.MaximumAantal,
	}
	if echo.IndicatorVervolgvraag == "" {
		echo.IndicatorVervolgvraag = "false"
	}
	return echo
}
