package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"bannergen/internal/banner"
	"bannergen/internal/render"
)

const (
	homeMessage     = "Tu generador de banners está funcionando 🚀"
	notFoundMessage = "Ruta no encontrada ❌"
	renderMessage   = "Endpoint /render funcionando ✅"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypePNG  = "image/png"
)

func handleHome(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeText(w, http.StatusOK, homeMessage)
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, notFoundMessage)
}

func (s *Server) handlePage(name string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		page, err := s.loader.Load(name)
		if err != nil {
			s.fail(w, r, "Error cargando la página: ", err)
			return
		}
		writeHTML(w, page)
	}
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	html, err := s.fillBanner(r)
	if err != nil {
		s.fail(w, r, "Error cargando la plantilla: ", err)
		return
	}
	writeHTML(w, html)
}

func (s *Server) handleImage(rasterizer render.Rasterizer, width, height int) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		html, err := s.fillBanner(r)
		if err != nil {
			s.fail(w, r, "Error generando PNG: ", err)
			return
		}

		ctx := r.Context()
		if s.cfg.RenderTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.RenderTimeout)
			defer cancel()
		}
		png, err := rasterizer.Render(ctx, html, width, height)
		if err != nil {
			s.fail(w, r, "Error generando PNG: ", err)
			return
		}

		w.Header().Set("Content-Type", contentTypePNG)
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			s.requestLog(r).WithError(err).Warn("write image error")
		}
	}
}

// fillBanner resolves the request query, loads the matching template and
// fills it.
func (s *Server) fillBanner(r *http.Request) (string, error) {
	file, data := banner.Resolve(r.URL.Query())
	tpl, err := s.loader.Load(file)
	if err != nil {
		return "", err
	}
	s.requestLog(r).WithField("template", data.Kind().String()).Debug("banner resolved")
	return banner.Fill(tpl, data), nil
}

type renderInfo struct {
	Template string        `json:"template"`
	Content  renderContent `json:"content"`
	Status   string        `json:"status"`
	Message  string        `json:"message"`
}

type renderContent struct {
	Headline string `json:"headline"`
	CTA      string `json:"cta"`
}

func handleRenderInfo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	info := renderInfo{
		Template: queryOr(q.Get("template"), banner.OfferDirect.String()),
		Content: renderContent{
			Headline: queryOr(q.Get("headline"), banner.DefaultOfferHeadline),
			CTA:      queryOr(q.Get("cta"), banner.DefaultOfferCTA),
		},
		Status:  "ok",
		Message: renderMessage,
	}
	writeJSON(w, http.StatusOK, info)
}

func handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) handlePanic(w http.ResponseWriter, r *http.Request, rec any) {
	s.requestLog(r).WithField("panic", rec).Error("handler panicked")
	writeText(w, http.StatusInternalServerError, "Error interno del servidor")
}

// fail logs err and answers with a 500 carrying its message.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	s.requestLog(r).WithError(err).Error("request failed")
	writeText(w, http.StatusInternalServerError, prefix+err.Error())
}

func queryOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
