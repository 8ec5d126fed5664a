// Package translator converts StUF-ZKN vragen into answers assembled from the
// ZGW registry and a direct query on the document index database.
package translator

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"fastdrc/internal/translator/metrics"
	"fastdrc/internal/zds"
	"fastdrc/internal/zgw"
	dErrors "fastdrc/pkg/domain-errors"
	"fastdrc/pkg/requestcontext"
)

// FunctieGeefLijstZaakdocumenten is the StUF function this translator serves.
const FunctieGeefLijstZaakdocumenten = "GeefLijstZaakdocumenten"

// Registry is the part of the ZGW client the translator uses.
type Registry interface {
	ZaakByIdentificatie(ctx context.Context, identificatie string) (*zgw.Zaak, error)
	InformatieObjectTypeByURL(ctx context.Context, url string) (*zgw.InformatieObjectType, error)
	BaseURL() string
	EndpointEnkelvoudigInformatieObject() string
	EndpointInformatieObjectType() string
}

// Response is a serialized antwoord ready for the transport.
type Response struct {
	Status   int
	Body     []byte
	Envelope *zds.ZakLa01LijstZaakdocumenten
}

// Converter is the load/execute lifecycle every translation follows.
type Converter interface {
	Load(raw []byte) (*zds.ZakLv01, error)
	Execute(ctx context.Context, vraag *zds.ZakLv01) (*Response, error)
}

var _ Converter = (*Translator)(nil)

// Translator answers GeefLijstZaakdocumenten by querying the document index
// database directly instead of paging through the documenten API.
type Translator struct {
	cfg      Config
	registry Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Translator)

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Translator) {
		t.metrics = m
	}
}

// New validates the datasource parameters and returns a ready translator.
// Any configuration problem is reported here, before a request is served.
func New(params ParameterStore, registry Registry, opts ...Option) (*Translator, error) {
	if registry == nil {
		return nil, dErrors.New(dErrors.CodeConfiguration, "zgw registry client is required")
	}
	cfg, err := LoadConfig(params)
	if err != nil {
		return nil, err
	}
	t := &Translator{
		cfg:      cfg,
		registry: registry,
		logger:   slog.Default(),
		tracer:   otel.Tracer("fastdrc/translator"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Load decodes the SOAP payload into a ZakLv01.
func (t *Translator) Load(raw []byte) (*zds.ZakLv01, error) {
	var vraag zds.ZakLv01
	if err := zds.Unmarshal(raw, &vraag); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid zakLv01 message")
	}
	return &vraag, nil
}

// Translate runs Load and Execute on a raw payload.
func (t *Translator) Translate(ctx context.Context, raw []byte) (*Response, error) {
	vraag, err := t.Load(raw)
	if err != nil {
		return nil, err
	}
	return t.Execute(ctx, vraag)
}

// Execute resolves the zaak, lists its documents from the database and builds
// the antwoord. Any failure aborts the whole translation; no partial antwoord
// is ever returned.
func (t *Translator) Execute(ctx context.Context, vraag *zds.ZakLv01) (resp *Response, err error) {
	start := time.Now()
	identificatie := vraag.Gelijk.Identificatie

	ctx, span := t.tracer.Start(ctx, "translator.GeefLijstZaakdocumenten",
		trace.WithAttributes(attribute.String("zaak.identificatie", identificatie)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		t.observe(err, start)
	}()

	session := requestcontext.Session(ctx)
	session.SetFunctie(FunctieGeefLijstZaakdocumenten)
	session.SetKenmerk("zaakidentificatie:" + identificatie)
	t.logger.DebugContext(ctx, "geefLijstZaakdocumenten", "zaak_identificatie", identificatie)

	zaak, err := t.registry.ZaakByIdentificatie(ctx, identificatie)
	if err != nil {
		return nil, err
	}

	statement := t.cfg.Statement(zaak.UUID)
	t.logger.DebugContext(ctx, "query to be executed", "statement", statement)

	relevant, err := t.listDocuments(ctx, statement)
	if err != nil {
		return nil, err
	}

	antwoord := zds.NewZakLa01LijstZaakdocumenten(vraag,
		session.Referentienummer(),
		zds.Tijdstip(requestcontext.Now(ctx)),
		relevant)
	body, err := zds.Marshal(antwoord)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to serialize zakLa01")
	}
	if t.metrics != nil {
		t.metrics.ObserveDocuments(len(relevant))
	}
	return &Response{Status: http.StatusOK, Body: body, Envelope: antwoord}, nil
}

// listDocuments runs statement on a connection held for this call only and
// maps every row in the order the database returns them.
func (t *Translator) listDocuments(ctx context.Context, statement string) ([]zds.HeeftRelevant, error) {
	db, err := sql.Open(t.cfg.Driver, t.cfg.DataSourceName())
	if err != nil {
		return nil, t.executionError(ctx, statement, err)
	}
	defer db.Close()

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, t.executionError(ctx, statement, err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, statement)
	if err != nil {
		return nil, t.executionError(ctx, statement, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, t.executionError(ctx, statement, err)
	}

	mapper := DocumentMapper{
		DocumentLinkBase: t.registry.BaseURL() + t.registry.EndpointEnkelvoudigInformatieObject(),
		Logger:           t.logger,
	}
	types := NewTypeCache()
	relevant := []zds.HeeftRelevant{}
	for rows.Next() {
		row, err := scanRow(rows, columns)
		if err != nil {
			return nil, t.executionError(ctx, statement, err)
		}
		typeID, err := row.Value(ColInformatieObjectType)
		if err != nil {
			return nil, t.executionError(ctx, statement, err)
		}
		label, err := t.documentTypeLabel(ctx, types, row, typeID)
		if err != nil {
			return nil, err
		}
		rel, err := mapper.Map(row, label)
		if err != nil {
			return nil, t.executionError(ctx, statement, err)
		}
		relevant = append(relevant, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, t.executionError(ctx, statement, err)
	}
	return relevant, nil
}

func (t *Translator) documentTypeLabel(ctx context.Context, types *TypeCache, row Row, v sql.NullString) (string, error) {
	if !v.Valid || v.String == "" {
		identificatie, _ := row.String(ColIdentificatie)
		return "", dErrors.New(dErrors.CodeDataIntegrity, "document has no informatieobjecttype").
			WithDetail(identificatie)
	}

	label, hit, err := types.Resolve(ctx, v.String, t.resolveDocumentType)
	if err != nil {
		return "", err
	}
	if t.metrics != nil {
		t.metrics.RecordTypeLookup(hit)
	}
	return label, nil
}

// resolveDocumentType looks the type up in the catalogus configured for this
// service: only the last path segment of the stored reference is kept, so
// references recorded against another host still resolve.
func (t *Translator) resolveDocumentType(ctx context.Context, typeID string) (string, error) {
	var suffix string
	if i := strings.LastIndex(typeID, "/"); i >= 0 {
		suffix = typeID[i:]
	} else {
		suffix = "/" + typeID
	}
	typeURL := t.registry.BaseURL() + t.registry.EndpointInformatieObjectType() + suffix

	documenttype, err := t.registry.InformatieObjectTypeByURL(ctx, typeURL)
	if err != nil {
		return "", err
	}
	if documenttype == nil {
		return "", dErrors.New(dErrors.CodeDataIntegrity, "getZgwInformatieObjectType could not be found").
			WithDetail(typeURL)
	}
	return documenttype.Omschrijving, nil
}

func (t *Translator) executionError(ctx context.Context, statement string, err error) error {
	t.logger.WarnContext(ctx, "could not execute sql",
		"statement", statement,
		"error", err,
	)
	return dErrors.Wrap(err, dErrors.CodeExecution, "error while executing direct sqlquery").WithDetail(statement)
}

func (t *Translator) observe(err error, start time.Time) {
	if t.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = string(dErrors.CodeInternal)
		if de, ok := dErrors.As(err); ok {
			outcome = string(de.Code)
		}
	}
	t.metrics.ObserveTranslation(FunctieGeefLijstZaakdocumenten, outcome, start)
}
