// Package api serves the compressor over HTTP.
//
// Endpoints:
//
//	POST /compress         SpectrumData   -> CompressedData (base85 preset)
//	POST /decompress       CompressedData -> SpectrumData   (base85 preset)
//	POST /compress/url     SpectrumData   -> CompressedData (URL preset)
//	POST /decompress/url   CompressedData -> SpectrumData   (URL preset)
//	GET  /healthz
package api

import (
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
	"github.com/mspack/mspack"
	"github.com/mspack/mspack/internal/hash"
	"github.com/mspack/mspack/internal/logger"
	"github.com/mspack/mspack/spectrum"
)

// HeaderCompressor names the pipeline that produced a compress response.
const HeaderCompressor = "X-Mspack-Compressor"

// maxBodyBytes bounds request bodies; a 100k peak list is about 3 MiB of JSON.
const maxBodyBytes = 8 << 20

type Server struct {
	b85 *mspack.Compressor
	url *mspack.Compressor
	log logger.Logger
}

// NewServer creates a Server using the default presets. A nil log discards
// handler logs.
func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	return &Server{
		b85: mspack.NewB85Compressor(),
		url: mspack.NewURLCompressor(),
		log: log,
	}
}

// Register installs the routes and the request ID middleware on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(requestID)

	e.GET("/healthz", s.handleHealth)
	e.POST("/compress", s.compressHandler(s.b85))
	e.POST("/decompress", s.decompressHandler(s.b85))
	e.POST("/compress/url", s.compressHandler(s.url))
	e.POST("/decompress/url", s.decompressHandler(s.url))
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Compressors: []string{s.b85.String(), s.url.String()},
	})
}

func (s *Server) compressHandler(comp *mspack.Compressor) echo.HandlerFunc {
	return func(c *echo.Context) error {
		req, err := decodeJSON[SpectrumData](c.Request().Body)
		if err != nil {
			return writeBadRequest(c, err.Error())
		}

		out, err := comp.CompressSpectrum(spectrum.Spectrum{Mz: req.Mzs, Intensity: req.Intensities})
		if err != nil {
			return s.fail(c, comp, "compress", err)
		}

		h := c.Response().Header()
		h.Set("ETag", hash.ETag(out))
		h.Set(HeaderCompressor, comp.String())

		return c.JSON(http.StatusOK, CompressedData{CompressedData: out})
	}
}

func (s *Server) decompressHandler(comp *mspack.Compressor) echo.HandlerFunc {
	return func(c *echo.Context) error {
		req, err := decodeJSON[CompressedData](c.Request().Body)
		if err != nil {
			return writeBadRequest(c, err.Error())
		}
		if req.CompressedData == "" {
			return writeBadRequest(c, "compressed_data is required")
		}

		sp, err := comp.DecompressSpectrum(req.CompressedData)
		if err != nil {
			// every decompress failure comes from the supplied string
			s.log.Warn("decompress failed", "request_id", requestIDOf(c), "compressor", comp.String(), "error", err)
			return writeBadRequest(c, err.Error())
		}

		return c.JSON(http.StatusOK, SpectrumData{Mzs: sp.Mz, Intensities: sp.Intensity})
	}
}

func (s *Server) fail(c *echo.Context, comp *mspack.Compressor, op string, err error) error {
	log := s.log.With("request_id", requestIDOf(c), "compressor", comp.String())
	if isClientError(err) {
		log.Warn(op+" rejected", "error", err)
		return writeBadRequest(c, err.Error())
	}

	log.Error(op+" failed", "error", err)

	return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	if err := dec.Decode(&out); err != nil {
		return out, err
	}

	return out, nil
}
