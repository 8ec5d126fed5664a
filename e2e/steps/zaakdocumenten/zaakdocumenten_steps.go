package zaakdocumenten

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

const (
	pathBeantwoordVraag = "/translate/generic/zds/BeantwoordVraag"
	soapAction          = "http://www.egem.nl/StUF/sector/zkn/0310/geefLijstZaakdocumenten_Lv01"
)

const lv01Template = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"
    xmlns:ZKN="http://www.egem.nl/StUF/sector/zkn/0310" xmlns:StUF="http://www.egem.nl/StUF/StUF0301">
  <soapenv:Body>
    <ZKN:zakLv01>
      <ZKN:stuurgegevens>
        <StUF:berichtcode>Lv01</StUF:berichtcode>
        <StUF:zender><StUF:applicatie>E2E</StUF:applicatie></StUF:zender>
        <StUF:ontvanger><StUF:applicatie>FASTDRC</StUF:applicatie></StUF:ontvanger>
        <StUF:referentienummer>e2e-%s</StUF:referentienummer>
        <StUF:tijdstipBericht>20240101000000</StUF:tijdstipBericht>
        <StUF:entiteittype>ZAK</StUF:entiteittype>
      </ZKN:stuurgegevens>
      <ZKN:parameters><StUF:indicatorVervolgvraag>false</StUF:indicatorVervolgvraag></ZKN:parameters>
      <ZKN:gelijk StUF:entiteittype="ZAK"><ZKN:identificatie>%s</ZKN:identificatie></ZKN:gelijk>
    </ZKN:zakLv01>
  </soapenv:Body>
</soapenv:Envelope>`

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	PostSOAP(path, action string, envelope []byte) error
}

// RegisterSteps registers geefLijstZaakdocumenten step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &zaakdocumentenSteps{tc: tc}

	ctx.Step(`^I ask for the documents of zaak "([^"]*)"$`, steps.askDocuments)
	ctx.Step(`^I ask for the documents of zaak "([^"]*)" without a soapaction$`, steps.askDocumentsWithoutAction)
	ctx.Step(`^I post an unknown soapaction "([^"]*)"$`, steps.postUnknownAction)
}

type zaakdocumentenSteps struct {
	tc TestContext
}

func vraag(identificatie string) []byte {
	return []byte(fmt.Sprintf(lv01Template, identificatie, identificatie))
}

func (s *zaakdocumentenSteps) askDocuments(ctx context.Context, identificatie string) error {
	return s.tc.PostSOAP(pathBeantwoordVraag, soapAction, vraag(identificatie))
}

func (s *zaakdocumentenSteps) askDocumentsWithoutAction(ctx context.Context, identificatie string) error {
	return s.tc.PostSOAP(pathBeantwoordVraag, "", vraag(identificatie))
}

func (s *zaakdocumentenSteps) postUnknownAction(ctx context.Context, action string) error {
	return s.tc.PostSOAP(pathBeantwoordVraag, action, vraag("ZK-unused"))
}
