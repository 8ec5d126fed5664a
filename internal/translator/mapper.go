package translator

import (
	"log/slog"
	"strings"

	"fastdrc/internal/zds"
)

// Columns the configured statement must select.
const (
	ColIdentificatie           = "identificatie"
	ColCreatiedatum            = "creatiedatum"
	ColOntvangstdatum          = "ontvangstdatum"
	ColTitel                   = "titel"
	ColFormaat                 = "formaat"
	ColTaal                    = "taal"
	ColVersie                  = "versie"
	ColStatus                  = "status"
	ColVerzenddatum            = "verzenddatum"
	ColVertrouwelijkAanduiding = "vertrouwelijkAanduiding"
	ColAuteur                  = "auteur"
	ColLink                    = "link"
	ColInformatieObjectType    = "informatieobjecttype"
	ColBeschrijving            = "beschrijving"
	ColRegistratiedatum        = "registratiedatum"
)

// DocumentMapper turns document rows into heeftRelevant records.
type DocumentMapper struct {
	// DocumentLinkBase is the registry base URL plus the
	// enkelvoudiginformatieobjecten endpoint.
	DocumentLinkBase string
	Logger           *slog.Logger
}

// Map converts row and its resolved document type label. Status and
// beschrijving default to the empty string; ontvangstdatum and verzenddatum
// stay absent when NULL.
func (m DocumentMapper) Map(row Row, label string) (zds.HeeftRelevant, error) {
	var (
		doc = &zds.ZaakDocument{Entiteittype: zds.EntiteittypeDocument, Omschrijving: label}
		err error
	)
	text := func(col string, dst *string) {
		if err == nil {
			*dst, err = row.String(col)
		}
	}
	optional := func(col string, dst **string) {
		if err == nil {
			*dst, err = row.Optional(col)
		}
	}

	var creatiedatum, vertrouwelijk, link string
	text(ColIdentificatie, &doc.Identificatie)
	text(ColCreatiedatum, &creatiedatum)
	optional(ColOntvangstdatum, &doc.Ontvangstdatum)
	text(ColTitel, &doc.Titel)
	text(ColFormaat, &doc.Formaat)
	text(ColTaal, &doc.Taal)
	text(ColVersie, &doc.Versie)
	text(ColStatus, &doc.Status)
	optional(ColVerzenddatum, &doc.Verzenddatum)
	text(ColVertrouwelijkAanduiding, &vertrouwelijk)
	text(ColAuteur, &doc.Auteur)
	text(ColLink, &link)

	var titel, beschrijving, registratiedatum string
	text(ColTitel, &titel)
	text(ColBeschrijving, &beschrijving)
	text(ColRegistratiedatum, &registratiedatum)
	if err != nil {
		return zds.HeeftRelevant{}, err
	}

	doc.Creatiedatum = m.normalize(CreatiedatumPattern, creatiedatum)
	doc.VertrouwelijkAanduiding = strings.ToUpper(vertrouwelijk)
	doc.Link = m.DocumentLinkBase + "/" + link

	return zds.NewHeeftRelevant(doc, titel, beschrijving, m.normalize(RegistratiedatumPattern, registratiedatum)), nil
}

// normalize logs a warning for every date it cannot convert, NULL and empty
// included, and returns the value unchanged in that case.
func (m DocumentMapper) normalize(pattern, raw string) string {
	out, err := NormalizeDate(pattern, raw)
	if err != nil && m.Logger != nil {
		m.Logger.Warn("Failed to format date to [yyyyMMdd] format",
			"date", raw,
			"pattern", pattern,
			"error", err,
		)
	}
	return out
}
