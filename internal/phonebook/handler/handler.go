package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	dErrors "phonebookd/pkg/domain-errors"
	"phonebookd/pkg/platform/httputil"
	"phonebookd/pkg/requestcontext"
)

// VCardContentType is served for phonebook exports.
const VCardContentType = "text/vcard; charset=utf-8"

// Phonebook is the per-modem service the handler drives.
type Phonebook interface {
	Export(ctx context.Context) (string, error)
	ExportFdn(ctx context.Context) ([]models.FdnEntry, error)
	InsertFdn(ctx context.Context, name, number, pin2 string) (int, error)
	UpdateFdn(ctx context.Context, name, number, pin2 string, index int) error
	DeleteFdn(ctx context.Context, pin2 string, index int) error
	Status() models.Status
}

// Instances resolves and manages phonebook instances by modem ID.
type Instances interface {
	Phonebook(modemID string) (Phonebook, error)
	Attach(ctx context.Context, modem ports.ModemInfo, driver string) (models.Status, error)
	Detach(ctx context.Context, modemID string) error
	List() []models.Status
}

// Handler wires phonebook endpoints to the instance manager.
type Handler struct {
	instances Instances
	logger    *slog.Logger
}

func New(instances Instances, logger *slog.Logger) *Handler {
	return &Handler{
		instances: instances,
		logger:    logger,
	}
}

// Register mounts the modem and phonebook endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/modems", func(r chi.Router) {
		r.Get("/", h.HandleListModems)
		r.Post("/", h.HandleAttachModem)
		r.Route("/{modemID}", func(r chi.Router) {
			r.Delete("/", h.HandleDetachModem)
			r.Get("/phonebook", h.HandleExport)
			r.Get("/phonebook/status", h.HandleStatus)
			r.Get("/phonebook/fdn", h.HandleListFdn)
			r.Post("/phonebook/fdn", h.HandleInsertFdn)
			r.Put("/phonebook/fdn/{index}", h.HandleUpdateFdn)
			r.Delete("/phonebook/fdn/{index}", h.HandleDeleteFdn)
		})
	})
}

// HandleListModems handles GET /modems.
func (h *Handler) HandleListModems(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.ModemListResponse{Modems: h.instances.List()})
}

// HandleAttachModem handles POST /modems.
func (h *Handler) HandleAttachModem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if !h.requireActor(w, r) {
		return
	}

	req, ok := httputil.DecodeAndPrepare[models.AttachModemRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	status, err := h.instances.Attach(ctx, ports.ModemInfo{ID: req.ID, Vendor: req.Vendor, Model: req.Model}, req.Driver)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to attach modem",
			"request_id", requestID,
			"modem_id", req.ID,
			"driver", req.Driver,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, status)
}

// HandleDetachModem handles DELETE /modems/{modemID}.
func (h *Handler) HandleDetachModem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.requireActor(w, r) {
		return
	}
	modemID, ok := h.modemID(w, r)
	if !ok {
		return
	}
	if err := h.instances.Detach(ctx, modemID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExport handles GET /modems/{modemID}/phonebook and returns the
// merged vCard document.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	pb, modemID, ok := h.phonebook(w, r)
	if !ok {
		return
	}

	vcard, err := pb.Export(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "phonebook export failed",
			"request_id", requestID,
			"modem_id", modemID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "phonebook exported",
		"request_id", requestID,
		"modem_id", modemID,
		"bytes", len(vcard),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	w.Header().Set("Content-Type", VCardContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(vcard))
}

// HandleStatus handles GET /modems/{modemID}/phonebook/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	pb, _, ok := h.phonebook(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pb.Status())
}

// HandleListFdn handles GET /modems/{modemID}/phonebook/fdn.
func (h *Handler) HandleListFdn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pb, modemID, ok := h.phonebook(w, r)
	if !ok {
		return
	}

	entries, err := pb.ExportFdn(ctx)
	if err != nil {
		h.logFdnError(ctx, "read", modemID, 0, err)
		httputil.WriteError(w, err)
		return
	}
	if entries == nil {
		entries = []models.FdnEntry{}
	}
	httputil.WriteJSON(w, http.StatusOK, models.FdnListResponse{Entries: entries})
}

// HandleInsertFdn handles POST /modems/{modemID}/phonebook/fdn.
func (h *Handler) HandleInsertFdn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if !h.requireActor(w, r) {
		return
	}
	pb, modemID, ok := h.phonebook(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.InsertFdnRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	index, err := pb.InsertFdn(ctx, req.Name, req.Number, req.PIN2)
	if err != nil {
		h.logFdnError(ctx, "insert", modemID, 0, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.InsertFdnResponse{Index: index})
}

// HandleUpdateFdn handles PUT /modems/{modemID}/phonebook/fdn/{index}.
func (h *Handler) HandleUpdateFdn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if !h.requireActor(w, r) {
		return
	}
	pb, modemID, ok := h.phonebook(w, r)
	if !ok {
		return
	}
	index, err := models.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateFdnRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := pb.UpdateFdn(ctx, req.Name, req.Number, req.PIN2, index); err != nil {
		h.logFdnError(ctx, "update", modemID, index, err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteFdn handles DELETE /modems/{modemID}/phonebook/fdn/{index}.
// PIN2 travels in the JSON body.
func (h *Handler) HandleDeleteFdn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if !h.requireActor(w, r) {
		return
	}
	pb, modemID, ok := h.phonebook(w, r)
	if !ok {
		return
	}
	index, err := models.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.DeleteFdnRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := pb.DeleteFdn(ctx, req.PIN2, index); err != nil {
		h.logFdnError(ctx, "delete", modemID, index, err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// modemID reads the path parameter. Modem IDs are object paths, so clients
// send them percent-encoded.
func (h *Handler) modemID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "modemID")
	modemID, err := url.PathUnescape(raw)
	if err != nil || modemID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid modem id"))
		return "", false
	}
	return modemID, true
}

func (h *Handler) phonebook(w http.ResponseWriter, r *http.Request) (Phonebook, string, bool) {
	modemID, ok := h.modemID(w, r)
	if !ok {
		return nil, "", false
	}
	pb, err := h.instances.Phonebook(modemID)
	if err != nil {
		httputil.WriteError(w, err)
		return nil, "", false
	}
	return pb, modemID, true
}

func (h *Handler) requireActor(w http.ResponseWriter, r *http.Request) bool {
	if requestcontext.ActorID(r.Context()) == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return false
	}
	return true
}

func (h *Handler) logFdnError(ctx context.Context, op, modemID string, index int, err error) {
	args := []any{
		"request_id", requestcontext.RequestID(ctx),
		"modem_id", modemID,
		"operation", op,
		"error", err,
	}
	if index > 0 {
		args = append(args, "index", index)
	}
	if dErrors.CodeOf(err) == dErrors.CodeFailed {
		h.logger.ErrorContext(ctx, "FDN operation failed", args...)
		return
	}
	h.logger.WarnContext(ctx, "FDN operation rejected", args...)
}
