package httptransport

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fastdrc/internal/platform/middleware"
	"fastdrc/internal/translator"
	"fastdrc/internal/zds"
	dErrors "fastdrc/pkg/domain-errors"
	"fastdrc/pkg/platform/httputil"
	"fastdrc/pkg/requestcontext"
)

const (
	contentTypeXML = "text/xml; charset=utf-8"
	maxBodyBytes   = 10 << 20
)

// Handler answers StUF-ZKN vragen posted to BeantwoordVraag. Each vraag is
// routed to the converter registered for its SOAPAction, or for the element
// inside the SOAP body when the caller sends no action.
type Handler struct {
	logger    *slog.Logger
	byAction  map[string]translator.Converter
	byMessage map[xml.Name]translator.Converter
}

func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		byAction:  map[string]translator.Converter{},
		byMessage: map[xml.Name]translator.Converter{},
	}
}

// Handle registers c for vragen with the given SOAPAction and body element.
func (h *Handler) Handle(action string, message xml.Name, c translator.Converter) {
	h.byAction[action] = c
	h.byMessage[message] = c
}

func (h *Handler) handleBeantwoordVraag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeFault(w, r, nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "could not read request body"))
		return
	}

	converter, err := h.converterFor(r, raw)
	if err != nil {
		h.writeFault(w, r, nil, err)
		return
	}

	vraag, err := converter.Load(raw)
	if err != nil {
		h.writeFault(w, r, nil, err)
		return
	}

	resp, err := converter.Execute(ctx, vraag)
	if err != nil {
		h.writeFault(w, r, &vraag.Stuurgegevens, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeXML)
	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		h.logger.ErrorContext(ctx, "failed to write antwoord",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
	}
}

func (h *Handler) converterFor(r *http.Request, raw []byte) (translator.Converter, error) {
	if action := strings.Trim(r.Header.Get("SOAPAction"), `" `); action != "" {
		if c, ok := h.byAction[action]; ok {
			return c, nil
		}
		return nil, dErrors.New(dErrors.CodeBadRequest, "no translation registered for soapaction").WithDetail(action)
	}

	name, err := zds.MessageName(raw)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "could not determine message type")
	}
	if c, ok := h.byMessage[name]; ok {
		return c, nil
	}
	return nil, dErrors.New(dErrors.CodeBadRequest, "no translation registered for message").
		WithDetail(fmt.Sprintf("{%s}%s", name.Space, name.Local))
}

// writeFault answers with a Fo02 fault. vraag is nil when the request could
// not be decoded; the fault then carries only our own reference.
func (h *Handler) writeFault(w http.ResponseWriter, r *http.Request, vraag *zds.Stuurgegevens, err error) {
	ctx := r.Context()
	status := httputil.StatusFor(err)
	requestID := middleware.GetRequestID(ctx)

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "translation failed",
			"error", err,
			"code", httputil.ErrorCode(err),
			"request_id", requestID,
		)
	} else {
		h.logger.WarnContext(ctx, "vraag rejected",
			"error", err,
			"code", httputil.ErrorCode(err),
			"request_id", requestID,
		)
	}

	var header zds.Stuurgegevens
	if vraag != nil {
		header = *vraag
	}
	session := requestcontext.Session(ctx)
	header = zds.ReplyStuurgegevens(header, session.Referentienummer(), zds.Tijdstip(requestcontext.Now(ctx)))

	omschrijving := httputil.Describe(err)
	if omschrijving == "" {
		omschrijving = http.StatusText(status)
	}
	fault := zds.NewFault(header, status < http.StatusInternalServerError, omschrijving, httputil.ErrorCode(err))

	body, mErr := zds.Marshal(fault)
	if mErr != nil {
		h.logger.ErrorContext(ctx, "failed to marshal fault", "error", mErr, "request_id", requestID)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeXML)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
