package api

// SpectrumData is the body of the compress endpoints and the response of the
// decompress endpoints.
type SpectrumData struct {
	Mzs         []float32 `json:"mzs"`
	Intensities []float32 `json:"intensities"`
}

// CompressedData is the response of the compress endpoints and the body of
// the decompress endpoints.
type CompressedData struct {
	CompressedData string `json:"compressed_data"`
}

type ResponseError struct {
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty"`
}

type healthResponse struct {
	Status      string   `json:"status"`
	Compressors []string `json:"compressors"`
}
