// Package zds holds the StUF-ZKN 0310 message types exchanged with legacy
// zaaksystemen and the SOAP envelope they travel in.
package zds

import "encoding/xml"

const (
	NamespaceZKN  = "http://www.egem.nl/StUF/sector/zkn/0310"
	NamespaceStUF = "http://www.egem.nl/StUF/StUF0301"
	NamespaceXSI  = "http://www.w3.org/2001/XMLSchema-instance"
)

// Entity types used in StUF:entiteittype attributes.
const (
	EntiteittypeZaak         = "ZAK"
	EntiteittypeZaakDocument = "ZAKEDC"
	EntiteittypeDocument     = "EDC"
)

const (
	BerichtcodeVraag    = "Lv01"
	BerichtcodeAntwoord = "La01"
	BerichtcodeFout     = "Fo02"
)

// SoapActionGeefLijstZaakdocumenten is the SOAPAction of a ZakLv01 vraag.
const SoapActionGeefLijstZaakdocumenten = NamespaceZKN + "/geefLijstZaakdocumenten_Lv01"

// NameZakLv01 is the body element of a ZakLv01 vraag.
var NameZakLv01 = xml.Name{Space: NamespaceZKN, Local: "zakLv01"}

// Systeem identifies a sending or receiving application.
type Systeem struct {
	Organisatie   string `xml:"http://www.egem.nl/StUF/StUF0301 organisatie,omitempty"`
	Applicatie    string `xml:"http://www.egem.nl/StUF/StUF0301 applicatie"`
	Administratie string `xml:"http://www.egem.nl/StUF/StUF0301 administratie,omitempty"`
	Gebruiker     string `xml:"http://www.egem.nl/StUF/StUF0301 gebruiker,omitempty"`
}

// Stuurgegevens is the routing and correlation header of every StUF message.
type Stuurgegevens struct {
	Berichtcode      string  `xml:"http://www.egem.nl/StUF/StUF0301 berichtcode"`
	Zender           Systeem `xml:"http://www.egem.nl/StUF/StUF0301 zender"`
	Ontvanger        Systeem `xml:"http://www.egem.nl/StUF/StUF0301 ontvanger"`
	Referentienummer string  `xml:"http://www.egem.nl/StUF/StUF0301 referentienummer"`
	TijdstipBericht  string  `xml:"http://www.egem.nl/StUF/StUF0301 tijdstipBericht"`
	CrossRefnummer   string  `xml:"http://www.egem.nl/StUF/StUF0301 crossRefnummer,omitempty"`
	Entiteittype     string  `xml:"http://www.egem.nl/StUF/StUF0301 entiteittype"`
}

// Parameters carries the vraag/antwoord parameters that are echoed back.
type Parameters struct {
	Sortering             string `xml:"http://www.egem.nl/StUF/StUF0301 sortering,omitempty"`
	IndicatorVervolgvraag string `xml:"http://www.egem.nl/StUF/StUF0301 indicatorVervolgvraag"`
	MaximumAantal         string `xml:"http://www.egem.nl/StUF/StUF0301 maximumAantal,omitempty"`
}

// Gelijk holds the selection criteria of a vraag.
type Gelijk struct {
	Entiteittype  string `xml:"http://www.egem.nl/StUF/StUF0301 entiteittype,attr,omitempty"`
	Identificatie string `xml:"http://www.egem.nl/StUF/sector/zkn/0310 identificatie"`
}

// ZakLv01 is the inbound "geef lijst zaakdocumenten" vraag.
type ZakLv01 struct {
	XMLName       xml.Name      `xml:"http://www.egem.nl/StUF/sector/zkn/0310 zakLv01"`
	Stuurgegevens Stuurgegevens `xml:"http://www.egem.nl/StUF/sector/zkn/0310 stuurgegevens"`
	Parameters    Parameters    `xml:"http://www.egem.nl/StUF/sector/zkn/0310 parameters"`
	Gelijk        Gelijk        `xml:"http://www.egem.nl/StUF/sector/zkn/0310 gelijk"`
}

// ZaakDocument is one document (EDC) in the antwoord. Pointer fields are
// omitted when the source had no value.
type ZaakDocument struct {
	Entiteittype            string  `xml:"http://www.egem.nl/StUF/StUF0301 entiteittype,attr"`
	Identificatie           string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 identificatie"`
	Omschrijving            string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 dct.omschrijving"`
	Creatiedatum            string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 creatiedatum"`
	Ontvangstdatum          *string `xml:"http://www.egem.nl/StUF/sector/zkn/0310 ontvangstdatum,omitempty"`
	Titel                   string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 titel"`
	Formaat                 string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 formaat"`
	Taal                    string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 taal"`
	Versie                  string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 versie"`
	Status                  string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 status"`
	Verzenddatum            *string `xml:"http://www.egem.nl/StUF/sector/zkn/0310 verzenddatum,omitempty"`
	VertrouwelijkAanduiding string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 vertrouwelijkAanduiding"`
	Auteur                  string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 auteur"`
	Link                    string  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 link"`
}

// HeeftRelevant links the zaak in the antwoord to one document.
type HeeftRelevant struct {
	Entiteittype     string        `xml:"http://www.egem.nl/StUF/StUF0301 entiteittype,attr"`
	Gerelateerde     *ZaakDocument `xml:"http://www.egem.nl/StUF/sector/zkn/0310 gerelateerde"`
	Titel            string        `xml:"http://www.egem.nl/StUF/sector/zkn/0310 titel"`
	Beschrijving     string        `xml:"http://www.egem.nl/StUF/sector/zkn/0310 beschrijving"`
	Registratiedatum string        `xml:"http://www.egem.nl/StUF/sector/zkn/0310 registratiedatum"`
}

// ObjectLijstZaakDocument is the zaak object of the antwoord.
type ObjectLijstZaakDocument struct {
	Entiteittype  string          `xml:"http://www.egem.nl/StUF/StUF0301 entiteittype,attr"`
	HeeftRelevant []HeeftRelevant `xml:"http://www.egem.nl/StUF/sector/zkn/0310 heeftRelevant"`
}

type AntwoordLijstZaakdocument struct {
	Object ObjectLijstZaakDocument `xml:"http://www.egem.nl/StUF/sector/zkn/0310 object"`
}

// ZakLa01LijstZaakdocumenten is the antwoord to ZakLv01.
type ZakLa01LijstZaakdocumenten struct {
	XMLName       xml.Name                  `xml:"http://www.egem.nl/StUF/sector/zkn/0310 zakLa01"`
	Stuurgegevens Stuurgegevens             `xml:"http://www.egem.nl/StUF/sector/zkn/0310 stuurgegevens"`
	Parameters    Parameters                `xml:"http://www.egem.nl/StUF/sector/zkn/0310 parameters"`
	Antwoord      AntwoordLijstZaakdocument `xml:"http://www.egem.nl/StUF/sector/zkn/0310 antwoord"`
}

// NewHeeftRelevant wraps doc in a relation record.
func NewHeeftRelevant(doc *ZaakDocument, titel, beschrijving, registratiedatum string) HeeftRelevant {
	return HeeftRelevant{
		Entiteittype:     EntiteittypeZaakDocument,
		Gerelateerde:     doc,
		Titel:            titel,
		Beschrijving:     beschrijving,
		Registratiedatum: registratiedatum,
	}
}

// NewZakLa01LijstZaakdocumenten builds the antwoord for vraag. The header is a
// reply header with berichtcode La01 and entiteittype ZAK regardless of what
// the vraag carried.
func NewZakLa01LijstZaakdocumenten(vraag *ZakLv01, referentienummer, tijdstip string, relevant []HeeftRelevant) *ZakLa01LijstZaakdocumenten {
	header := ReplyStuurgegevens(vraag.Stuurgegevens, referentienummer, tijdstip)
	header.Berichtcode = BerichtcodeAntwoord
	header.Entiteittype = EntiteittypeZaak

	if relevant == nil {
		relevant = []HeeftRelevant{}
	}
	return &ZakLa01LijstZaakdocumenten{
		Stuurgegevens: header,
		Parameters:    EchoParameters(vraag.Parameters),
		Antwoord: AntwoordLijstZaakdocument{
			Object: ObjectLijstZaakDocument{
				Entiteittype:  EntiteittypeZaak,
				HeeftRelevant: relevant,
			},
		},
	}
}
