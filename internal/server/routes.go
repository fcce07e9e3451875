package server

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/julienschmidt/httprouter"

	"bannergen/internal/render"
	"bannergen/internal/templates"
)

var compressibleTypes = []string{
	"text/html",
	"text/plain",
	"application/json",
}

// Handler returns the full request pipeline. Only exact GET paths match;
// everything else, trailing-slash variants and other methods included, is
// answered with the not-found response.
func (s *Server) Handler() http.Handler {
	r := httprouter.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false
	r.HandleOPTIONS = false
	r.NotFound = http.HandlerFunc(handleNotFound)
	r.PanicHandler = s.handlePanic

	r.GET("/", handleHome)
	r.GET("/app", s.handlePage(templates.AppPage))
	r.GET("/landing", s.handlePage(templates.LandingPage))
	r.GET("/preview", s.handlePreview)
	r.GET("/png", s.handleImage(s.rasterizer, render.Width, render.Height))
	r.GET("/thumb", s.handleImage(s.thumbnails, render.Width, render.Height))
	r.GET("/render", handleRenderInfo)
	r.GET("/healthz", handleHealth)
	r.GET("/version", s.handleVersion)

	var h http.Handler = r
	if gzip, err := gziphandler.GzipHandlerWithOpts(gziphandler.ContentTypes(compressibleTypes)); err == nil {
		h = gzip(h)
	} else {
		s.logger.WithError(err).Warn("response compression disabled")
	}
	return s.requestLogger(h)
}
