package zds

import "encoding/xml"

// SOAP 1.1 fault codes.
const (
	FaultCodeServer = "soap:Server"
	FaultCodeClient = "soap:Client"
)

// StUF error codes used in Fo02 bodies.
const (
	FoutcodeServer = "StUF058"
	FoutcodeClient = "StUF055"
)

// Fault is a SOAP 1.1 fault carrying a StUF Fo02 bericht as detail.
// FaultCode is a QName in the envelope namespace, bound to the soap prefix
// declared on the Fault element itself.
type Fault struct {
	XMLName     xml.Name    `xml:"http://schemas.xmlsoap.org/soap/envelope/ Fault"`
	SOAPPrefix  string      `xml:"xmlns:soap,attr"`
	FaultCode   string      `xml:"faultcode"`
	FaultString string      `xml:"faultstring"`
	Detail      FaultDetail `xml:"detail"`
}

type FaultDetail struct {
	Fo02 Fo02Bericht `xml:"http://www.egem.nl/StUF/StUF0301 Fo02Bericht"`
}

type Fo02Bericht struct {
	Stuurgegevens Stuurgegevens `xml:"http://www.egem.nl/StUF/StUF0301 stuurgegevens"`
	Body          Fo02Body      `xml:"http://www.egem.nl/StUF/StUF0301 body"`
}

type Fo02Body struct {
	Code         string `xml:"http://www.egem.nl/StUF/StUF0301 code"`
	Plek         string `xml:"http://www.egem.nl/StUF/StUF0301 plek"`
	Omschrijving string `xml:"http://www.egem.nl/StUF/StUF0301 omschrijving"`
	Details      string `xml:"http://www.egem.nl/StUF/StUF0301 details,omitempty"`
}

// NewFault builds a Fo02 fault. client selects the client-side fault code and
// plek; everything else is reported as a server fault.
func NewFault(header Stuurgegevens, client bool, omschrijving, details string) *Fault {
	code, plek, faultCode := FoutcodeServer, "server", FaultCodeServer
	if client {
		code, plek, faultCode = FoutcodeClient, "client", FaultCodeClient
	}
	header.Berichtcode = BerichtcodeFout
	return &Fault{
		SOAPPrefix:  NamespaceSOAP11,
		FaultCode:   faultCode,
		FaultString: "Proces voor afhandelen bericht geeft fout",
		Detail: FaultDetail{
			Fo02: Fo02Bericht{
				Stuurgegevens: header,
				Body: Fo02Body{
					Code:         code,
					Plek:         plek,
					Omschrijving: omschrijving,
					Details:      details,
				},
			},
		},
	}
}
