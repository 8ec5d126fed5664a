package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fastdrc/internal/platform/metrics"
	"fastdrc/internal/platform/middleware"
	"fastdrc/internal/translator"
	"fastdrc/internal/transport/http/mocks"
	"fastdrc/internal/zds"
	dErrors "fastdrc/pkg/domain-errors"
	"fastdrc/pkg/requestcontext"
	"fastdrc/pkg/testutil"
)

//go:generate mockgen -destination=mocks/converter-mocks.go -package=mocks fastdrc/internal/translator Converter

const lv01Envelope = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"
    xmlns:ZKN="http://www.egem.nl/StUF/sector/zkn/0310" xmlns:StUF="http://www.egem.nl/StUF/StUF0301">
  <soapenv:Body>
    <ZKN:zakLv01>
      <ZKN:stuurgegevens>
        <StUF:berichtcode>Lv01</StUF:berichtcode>
        <StUF:zender><StUF:applicatie>ZSH</StUF:applicatie></StUF:zender>
        <StUF:ontvanger><StUF:applicatie>FASTDRC</StUF:applicatie></StUF:ontvanger>
        <StUF:referentienummer>vraag-7</StUF:referentienummer>
        <StUF:tijdstipBericht>20240301120000</StUF:tijdstipBericht>
        <StUF:entiteittype>ZAK</StUF:entiteittype>
      </ZKN:stuurgegevens>
      <ZKN:parameters><StUF:indicatorVervolgvraag>false</StUF:indicatorVervolgvraag></ZKN:parameters>
      <ZKN:gelijk StUF:entiteittype="ZAK"><ZKN:identificatie>ZK-1</ZKN:identificatie></ZKN:gelijk>
    </ZKN:zakLv01>
  </soapenv:Body>
</soapenv:Envelope>`

type HandlerSuite struct {
	suite.Suite
	converter *mocks.MockConverter
	router    http.Handler
	vraag     *zds.ZakLv01
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.converter = mocks.NewMockConverter(ctrl)

	s.vraag = &zds.ZakLv01{}
	s.Require().NoError(zds.Unmarshal([]byte(lv01Envelope), s.vraag))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger)
	handler.Handle(zds.SoapActionGeefLijstZaakdocumenten, zds.NameZakLv01, s.converter)
	s.router = NewRouter(RouterConfig{
		Handler:  handler,
		Logger:   logger,
		Metrics:  metrics.NewWithRegisterer(prometheus.NewRegistry()),
		Gatherer: prometheus.NewRegistry(),
	})
}

func (s *HandlerSuite) post(action string) (int, string, http.Header) {
	req := testutil.NewSOAPRequest(s.T(), PathBeantwoordVraag, action, []byte(lv01Envelope))
	rr := testutil.DoRequest(s.router, req)
	return rr.Code, string(testutil.ReadBody(s.T(), rr)), rr.Header()
}

func (s *HandlerSuite) decodeFault(body string) *zds.Fault {
	var fault zds.Fault
	s.Require().NoError(zds.Unmarshal([]byte(body), &fault))
	return &fault
}

// =============================================================================
// Routing
// =============================================================================

func (s *HandlerSuite) TestRoutesOnSOAPAction() {
	s.converter.EXPECT().Load(gomock.Any()).Return(s.vraag, nil)
	s.converter.EXPECT().Execute(gomock.Any(), s.vraag).
		Return(&translator.Response{Status: http.StatusOK, Body: []byte("<antwoord/>")}, nil)

	status, body, header := s.post(zds.SoapActionGeefLijstZaakdocumenten)

	s.Equal(http.StatusOK, status)
	s.Equal("<antwoord/>", body)
	s.Equal(contentTypeXML, header.Get("Content-Type"))
	s.NotEmpty(header.Get(middleware.HeaderRequestID))
}

func (s *HandlerSuite) TestRoutesOnBodyElementWithoutAction() {
	s.converter.EXPECT().Load(gomock.Any()).Return(s.vraag, nil)
	s.converter.EXPECT().Execute(gomock.Any(), s.vraag).
		Return(&translator.Response{Status: http.StatusOK, Body: []byte("<antwoord/>")}, nil)

	status, _, _ := s.post("")

	s.Equal(http.StatusOK, status)
}

func (s *HandlerSuite) TestUnknownActionIsClientFault() {
	status, body, _ := s.post("http://www.egem.nl/StUF/sector/zkn/0310/geefZaakdetails_Lv01")

	s.Equal(http.StatusBadRequest, status)
	fault := s.decodeFault(body)
	s.Equal(zds.FaultCodeClient, fault.FaultCode)
	s.Equal(zds.FoutcodeClient, fault.Detail.Fo02.Body.Code)
	s.Contains(fault.Detail.Fo02.Body.Omschrijving, "geefZaakdetails_Lv01")
}

func (s *HandlerSuite) TestOnlyPostIsRouted() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, PathBeantwoordVraag))
	s.Equal(http.StatusMethodNotAllowed, rr.Code)
}

// =============================================================================
// Faults
// =============================================================================

func (s *HandlerSuite) TestConverterFailures() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantText   string
	}{
		{
			name:       "unknown zaak",
			err:        dErrors.New(dErrors.CodeNotFound, "zaak with identificatie 'ZK-1' not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   zds.FoutcodeClient,
			wantText:   "ZK-1",
		},
		{
			name: "failed query",
			err: dErrors.Wrap(errors.New("syntax error"), dErrors.CodeExecution, "error while executing direct sqlquery").
				WithDetail("SELECT broken"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   zds.FoutcodeServer,
			wantText:   "SELECT broken",
		},
		{
			name:       "unresolved document type",
			err:        dErrors.New(dErrors.CodeDataIntegrity, "getZgwInformatieObjectType could not be found").WithDetail("http://x/t9"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   zds.FoutcodeServer,
			wantText:   "http://x/t9",
		},
		{
			name:       "registry down",
			err:        dErrors.New(dErrors.CodeUnavailable, "zgw request failed"),
			wantStatus: http.StatusBadGateway,
			wantCode:   zds.FoutcodeServer,
			wantText:   "zgw request failed",
		},
		{
			name:       "untyped error is not described",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   zds.FoutcodeServer,
			wantText:   http.StatusText(http.StatusInternalServerError),
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.converter.EXPECT().Load(gomock.Any()).Return(s.vraag, nil)
			s.converter.EXPECT().Execute(gomock.Any(), s.vraag).Return(nil, tt.err)

			status, body, _ := s.post(zds.SoapActionGeefLijstZaakdocumenten)

			s.Equal(tt.wantStatus, status)
			fault := s.decodeFault(body)
			s.Equal(tt.wantCode, fault.Detail.Fo02.Body.Code)
			s.Contains(fault.Detail.Fo02.Body.Omschrijving, tt.wantText)
			s.NotContains(body, "nil pointer")

			header := fault.Detail.Fo02.Stuurgegevens
			s.Equal(zds.BerichtcodeFout, header.Berichtcode)
			s.Equal("vraag-7", header.CrossRefnummer)
			s.Equal("FASTDRC", header.Zender.Applicatie)
			s.NotEmpty(header.Referentienummer)
		})
	}
}

func (s *HandlerSuite) TestLoadFailureIsClientFault() {
	s.converter.EXPECT().Load(gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeBadRequest, "invalid zakLv01 message"))

	status, body, _ := s.post(zds.SoapActionGeefLijstZaakdocumenten)

	s.Equal(http.StatusBadRequest, status)
	fault := s.decodeFault(body)
	s.Equal(zds.FaultCodeClient, fault.FaultCode)
	s.Empty(fault.Detail.Fo02.Stuurgegevens.CrossRefnummer)
}

// =============================================================================
// Session
// =============================================================================

func TestHandlerUsesSessionReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	converter := mocks.NewMockConverter(ctrl)
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler.Handle(zds.SoapActionGeefLijstZaakdocumenten, zds.NameZakLv01, converter)

	testutil.Given(t, "a vraag for an unknown zaak", func(t *testing.T) {
		converter.EXPECT().Load(gomock.Any()).Return(&zds.ZakLv01{}, nil)
		converter.EXPECT().Execute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ *zds.ZakLv01) (*translator.Response, error) {
				requestcontext.Session(ctx).SetFunctie(translator.FunctieGeefLijstZaakdocumenten)
				return nil, dErrors.New(dErrors.CodeNotFound, "zaak not found")
			})

		testutil.When(t, "the handler answers", func(t *testing.T) {
			req := testutil.NewSOAPRequest(t, PathBeantwoordVraag, zds.SoapActionGeefLijstZaakdocumenten, []byte(lv01Envelope))
			req, session := testutil.WithSession(req, "ref-fixed")
			rr := testutil.DoRequest(http.HandlerFunc(handler.handleBeantwoordVraag), req)

			testutil.Then(t, "the fault carries the session reference", func(t *testing.T) {
				var fault zds.Fault
				require.NoError(t, zds.Unmarshal(testutil.ReadBody(t, rr), &fault))
				assert.Equal(t, "ref-fixed", fault.Detail.Fo02.Stuurgegevens.Referentienummer)
				assert.Equal(t, translator.FunctieGeefLijstZaakdocumenten, session.Functie())
			})
		})
	})
}
