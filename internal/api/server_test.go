package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
	"github.com/mspack/mspack"
	"github.com/mspack/mspack/internal/hash"
	"github.com/mspack/mspack/internal/logger"
	"github.com/stretchr/testify/require"
)

func newTestEcho(log logger.Logger) *echo.Echo {
	e := echo.New()
	NewServer(log).Register(e)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()
	e := newTestEcho(nil)

	rec := doJSON(t, e, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.Contains(t, body.Compressors, "SpectrumCompressorF32_Brotli_URL")
	require.Contains(t, body.Compressors, "SpectrumCompressorF32_Brotli_B85")
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	t.Parallel()
	e := newTestEcho(nil)

	routes := []struct {
		compress   string
		decompress string
		preset     *mspack.Compressor
	}{
		{"/compress", "/decompress", mspack.NewB85Compressor()},
		{"/compress/url", "/decompress/url", mspack.NewURLCompressor()},
	}

	for _, r := range routes {
		t.Run(r.compress, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodPost, r.compress, `{"mzs":[100.5,200.25,300.125],"intensities":[10,20,30]}`)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			require.NotEmpty(t, rec.Header().Get(HeaderRequestID))
			require.Equal(t, r.preset.String(), rec.Header().Get(HeaderCompressor))

			var compressed CompressedData
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &compressed))
			require.NotEmpty(t, compressed.CompressedData)
			require.Equal(t, hash.ETag(compressed.CompressedData), rec.Header().Get("ETag"))

			want, err := r.preset.Compress([]float32{100.5, 200.25, 300.125}, []float32{10, 20, 30})
			require.NoError(t, err)
			require.Equal(t, want, compressed.CompressedData)

			body, err := json.Marshal(compressed)
			require.NoError(t, err)
			rec = doJSON(t, e, http.MethodPost, r.decompress, string(body))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var data SpectrumData
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
			require.Equal(t, []float32{100.5, 200.25, 300.125}, data.Mzs)
			require.Equal(t, []float32{10, 20, 30}, data.Intensities)
		})
	}
}

func TestCompress_BadRequests(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := newTestEcho(logger.Text(&buf, slog.LevelDebug))

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"mzs":`},
		{"empty", `{"mzs":[],"intensities":[]}`},
		{"missing fields", `{}`},
		{"length mismatch", `{"mzs":[1,2],"intensities":[1]}`},
		{"wrong type", `{"mzs":"abc","intensities":[1]}`},
	}

	for _, tt := range tests {
		rec := doJSON(t, e, http.MethodPost, "/compress/url", tt.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, tt.name)
		require.Contains(t, rec.Body.String(), "invalid_request_error", tt.name)
	}

	require.Contains(t, buf.String(), "compress rejected")
}

func TestDecompress_BadRequests(t *testing.T) {
	t.Parallel()
	e := newTestEcho(nil)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing data", "/decompress", `{}`},
		{"bad base85", "/decompress", `{"compressed_data":"not base85 \""}`},
		{"bad base64", "/decompress/url", `{"compressed_data":"***"}`},
		{"not brotli", "/decompress/url", `{"compressed_data":"aGVsbG8gd29ybGQ="}`},
	}

	for _, tt := range tests {
		rec := doJSON(t, e, http.MethodPost, tt.path, tt.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, tt.name)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	t.Parallel()
	e := newTestEcho(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()
	e := newTestEcho(nil)

	first := doJSON(t, e, http.MethodGet, "/healthz", "").Header().Get(HeaderRequestID)
	second := doJSON(t, e, http.MethodGet, "/healthz", "").Header().Get(HeaderRequestID)
	require.Len(t, first, 36)
	require.NotEqual(t, first, second)
}
