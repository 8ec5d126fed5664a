package test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastdrc/internal/parameters"
	"fastdrc/internal/platform/metrics"
	"fastdrc/internal/translator"
	translatormetrics "fastdrc/internal/translator/metrics"
	httptransport "fastdrc/internal/transport/http"
	"fastdrc/internal/zds"
	"fastdrc/internal/zgw"
	"fastdrc/pkg/testutil"
)

// TestRouterWiring drives the real router, translator and registry client
// against a stub registry that knows no zaken, so no database is touched.
func TestRouterWiring(t *testing.T) {
	registryServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"count": 0, "results": []any{}})
	}))
	defer registryServer.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	testutil.Given(t, "the wired router", func(t *testing.T) {
		registry, err := zgw.New(zgw.Config{BaseURL: registryServer.URL})
		require.NoError(t, err)
		tr, err := translator.New(parameters.Static{
			translator.ParamDriverClassName: "org.postgresql.Driver",
			translator.ParamURL:             "jdbc:postgresql://localhost:5432/documenten",
			translator.ParamUsername:        "drc",
			translator.ParamPassword:        "drc",
			translator.ParamSQL:             "SELECT * FROM documenten WHERE zaak = '${UUID}'",
		}, registry, translator.WithLogger(logger), translator.WithMetrics(translatormetrics.NewWithRegisterer(reg)))
		require.NoError(t, err)

		handler := httptransport.NewHandler(logger)
		handler.Handle(zds.SoapActionGeefLijstZaakdocumenten, zds.NameZakLv01, tr)
		router := httptransport.NewRouter(httptransport.RouterConfig{
			Handler:  handler,
			Logger:   logger,
			Metrics:  metrics.NewWithRegisterer(reg),
			Gatherer: reg,
		})

		testutil.When(t, "asking for the documents of an unknown zaak", func(t *testing.T) {
			vraag, err := zds.Marshal(&zds.ZakLv01{
				Stuurgegevens: zds.Stuurgegevens{Berichtcode: zds.BerichtcodeVraag, Referentienummer: "smoke-1"},
				Gelijk:        zds.Gelijk{Identificatie: "ZK-404"},
			})
			require.NoError(t, err)
			rr := testutil.DoRequest(router, testutil.NewSOAPRequest(t, httptransport.PathBeantwoordVraag,
				zds.SoapActionGeefLijstZaakdocumenten, vraag))

			testutil.Then(t, "it answers with a Fo02 client fault", func(t *testing.T) {
				assert.Equal(t, http.StatusNotFound, rr.Code)
				var fault zds.Fault
				require.NoError(t, zds.Unmarshal(rr.Body.Bytes(), &fault))
				assert.Equal(t, zds.FoutcodeClient, fault.Detail.Fo02.Body.Code)
				assert.Contains(t, fault.Detail.Fo02.Body.Omschrijving, "ZK-404")
				assert.Equal(t, "smoke-1", fault.Detail.Fo02.Stuurgegevens.CrossRefnummer)
			})
		})

		testutil.When(t, "scraping metrics", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

			testutil.Then(t, "the translation outcome is counted", func(t *testing.T) {
				assert.Contains(t, rr.Body.String(), `fastdrc_translations_total{functie="GeefLijstZaakdocumenten",outcome="not_found"} 1`)
			})
		})
	})
}
