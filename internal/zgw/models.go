// Package zgw is a client for the ZGW (Zaakgericht Werken) REST APIs of the
// case registry: zaken, documenten and catalogi.
package zgw

// Zaak is the subset of a ZGW zaak the translators need.
type Zaak struct {
	URL             string `json:"url"`
	UUID            string `json:"uuid"`
	Identificatie   string `json:"identificatie"`
	Bronorganisatie string `json:"bronorganisatie"`
	Omschrijving    string `json:"omschrijving"`
	Zaaktype        string `json:"zaaktype"`
}

// InformatieObjectType is a document type from the catalogi API.
type InformatieObjectType struct {
	URL                         string `json:"url"`
	Catalogus                   string `json:"catalogus"`
	Omschrijving                string `json:"omschrijving"`
	VertrouwelijkheidAanduiding string `json:"vertrouwelijkheidaanduiding"`
	Concept                     bool   `json:"concept"`
}

type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
