package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/leapstack-labs/pname/pkg/dictionary"
	"github.com/leapstack-labs/pname/pkg/dictionary/loader"
	"github.com/leapstack-labs/pname/pkg/format"
	"github.com/leapstack-labs/pname/pkg/pname"
	"github.com/leapstack-labs/pname/pkg/token"
)

var (
	errNoDictionaryFile = errors.New("no dictionary file configured")
	errNoFile           = errors.New("no dictionary file uploaded")
)

// GenerateRequest is the body of POST /api/generate. Fields left out of the
// body take the values from NewGenerateRequest.
type GenerateRequest struct {
	LogicalName      string `json:"logicalName"`
	TokenizerType    string `json:"tokenizerType"`
	NamingConvention string `json:"namingConvention"`
	EnableFallback   bool   `json:"enableFallback"`
	DictionaryData   string `json:"dictionaryData,omitempty"`
	DictionaryFormat string `json:"dictionaryFormat,omitempty"`
}

// NewGenerateRequest returns a request with the API defaults: optimal
// tokenization, lower camel case, fallback enabled and CSV inline data.
func NewGenerateRequest() GenerateRequest {
	return GenerateRequest{
		TokenizerType:    token.StrategyOptimal.String(),
		NamingConvention: format.LowerCamel.String(),
		EnableFallback:   true,
		DictionaryFormat: loader.FormatCSV.String(),
	}
}

// GenerateResponse is the body returned by POST /api/generate.
type GenerateResponse struct {
	Success       bool     `json:"success"`
	LogicalName   string   `json:"logicalName"`
	PhysicalName  string   `json:"physicalName"`
	TokenMappings []string `json:"tokenMappings"`
	ErrorMessage  string   `json:"errorMessage,omitempty"`
}

// DictionaryInfo is returned by the dictionary endpoints.
type DictionaryInfo struct {
	Size   int  `json:"size"`
	Loaded bool `json:"loaded"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req := NewGenerateRequest()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeGenerateError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	opts, err := pname.ParseOptions(req.TokenizerType, req.NamingConvention, req.EnableFallback)
	if err != nil {
		s.writeGenerateError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Inline dictionaries apply to this request only.
	dict := s.generator.Dictionary()
	if req.DictionaryData != "" {
		dict, err = parseInlineDictionary(req.DictionaryFormat, req.DictionaryData)
		if err != nil {
			s.writeGenerateError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	res, err := s.generator.GenerateWithDictionary(dict, opts.Strategy, opts.Convention, req.LogicalName, opts.Fallback)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pname.ErrUnsupportedOption) {
			status = http.StatusBadRequest
		}
		s.writeGenerateError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Success:       true,
		LogicalName:   res.LogicalName,
		PhysicalName:  res.PhysicalName,
		TokenMappings: res.TokenMappings,
	})
}

func parseInlineDictionary(name, data string) (*dictionary.Dictionary, error) {
	f, err := parseFormat(name)
	if err != nil {
		return nil, err
	}
	return loader.LoadString(f, data)
}

// parseFormat parses a dictionary format name, defaulting to CSV when empty.
func parseFormat(name string) (loader.Format, error) {
	if name == "" {
		return loader.FormatCSV, nil
	}
	return loader.ParseFormat(name)
}

func (s *Server) handleDictionaryInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dictionaryInfo())
}

// handleDictionaryUpload replaces the shared dictionary with the request
// body, parsed in the format named by the "format" query parameter.
func (s *Server) handleDictionaryUpload(w http.ResponseWriter, r *http.Request) {
	f, err := parseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.loadDictionary(w, f, http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// handleDictionaryForm replaces the shared dictionary with a multipart
// upload: the "file" part holds the dictionary and the "format" field names
// its format.
func (s *Server) handleDictionaryForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errNoFile)
		return
	}
	defer func() { _ = file.Close() }()
	if header.Size == 0 {
		writeError(w, http.StatusBadRequest, errNoFile)
		return
	}

	f, err := parseFormat(r.FormValue("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.loadDictionary(w, f, file)
}

func (s *Server) loadDictionary(w http.ResponseWriter, f loader.Format, r io.Reader) {
	if err := s.generator.LoadDictionary(f, r); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.logger.Info("dictionary uploaded", "format", f, "size", s.generator.DictionarySize())
	s.notifier.broadcast(s.dictionaryInfo())
	writeJSON(w, http.StatusOK, s.dictionaryInfo())
}

func (s *Server) handleDictionaryReload(w http.ResponseWriter, _ *http.Request) {
	if err := s.Reload(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errNoDictionaryFile) {
			status = http.StatusConflict
		}
		s.logger.Error("dictionary reload failed", "error", err)
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dictionaryInfo())
}

// handleDictionaryEvents streams a server-sent event after every dictionary swap.
func (s *Server) handleDictionaryEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errors.New("streaming not supported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := s.notifier.subscribe()
	defer s.notifier.unsubscribe(ch)

	_, _ = fmt.Fprint(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case info := <-ch:
			data, err := json.Marshal(info)
			if err != nil {
				return
			}
			_, _ = fmt.Fprintf(w, "event: dictionary\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func (s *Server) dictionaryInfo() DictionaryInfo {
	return DictionaryInfo{
		Size:   s.generator.DictionarySize(),
		Loaded: s.generator.HasDictionary(),
	}
}

func (s *Server) writeGenerateError(w http.ResponseWriter, status int, msg string) {
	s.logger.Debug("generate failed", "status", status, "error", msg)
	writeJSON(w, status, GenerateResponse{ErrorMessage: msg})
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
