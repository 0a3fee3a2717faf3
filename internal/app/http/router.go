package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jorgeortega123/megamobilier-test-frontend/internal/app/config"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/app/http/handlers"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/app/http/middleware"
	pdfgen "github.com/jorgeortega123/megamobilier-test-frontend/internal/domain/quote/pdf/gofpdf"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/infra/quoteapi"
	"github.com/jorgeortega123/megamobilier-test-frontend/internal/infra/session"
)

func NewRouter(cfg config.Config, log *zap.SugaredLogger, store *session.Store, api *quoteapi.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(cfg, log, store, api, pdfgen.New())

	r.Get("/health", h.Health)
	r.Get("/", h.Page)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/capture/modality", h.SetModality)
		r.Post("/capture/text", h.SetText)
		r.Post("/capture/file", h.UploadFile)

		r.Post("/recording/start", h.StartRecording)
		r.Post("/recording/chunk", h.AppendChunk)
		r.Post("/recording/stop", h.StopRecording)

		r.Post("/quote", h.SubmitQuote)
		r.Get("/quote/pdf", h.ExportPDF)
		r.Get("/catalog", h.Catalog)
	})

	return r
}
