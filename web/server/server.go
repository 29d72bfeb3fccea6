package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"spheretrace/internal/logger"
	"spheretrace/pkg/renderer"
	"spheretrace/pkg/scene"
)

// Server streams progressive renders over HTTP
type Server struct {
	port int
	log  *logger.Logger
}

// NewServer creates a new web server
func NewServer(port int, log *logger.Logger) *Server {
	return &Server{port: port, log: log}
}

// RenderRequest holds the parameters of a render request
type RenderRequest struct {
	Width   int
	Samples int
	Depth   int
	Workers int
	Seed    int64
}

// ProgressUpdate is a single progressive update sent via SSE
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	Samples     int    `json:"samples"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Infof("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender streams progressive render passes as SSE events. Each pass
// is a full render at a doubled sample count, so the preview sharpens as
// passes complete.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.sendSSEError(w, "Streaming not supported")
		return
	}

	sc := scene.NewSimpleScene()
	width := req.Width
	height := int(float64(width) / sc.CameraConfig.AspectRatio)
	passSamples := passSampleCounts(req.Samples)

	start := time.Now()
	for pass, samples := range passSamples {
		raytracer := renderer.NewRaytracer(sc, width, height, renderer.SamplingConfig{
			SamplesPerPixel: samples,
			MaxDepth:        req.Depth,
		}, req.Seed, nil)
		img, _ := renderer.NewWorkerPool(raytracer, req.Workers).Render()

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			s.sendSSEError(w, fmt.Sprintf("PNG encoding failed: %v", err))
			return
		}

		update := ProgressUpdate{
			PassNumber:  pass + 1,
			TotalPasses: len(passSamples),
			Samples:     samples,
			ImageData:   base64.StdEncoding.EncodeToString(buf.Bytes()),
			IsComplete:  pass == len(passSamples)-1,
			ElapsedMs:   time.Since(start).Milliseconds(),
		}
		if err := s.sendSSEUpdate(w, flusher, update); err != nil {
			s.log.Warnf("Client disconnected: %v", err)
			return
		}
	}
}

// passSampleCounts doubles sample counts per pass until maxSamples:
// 1, 2, 4, ..., maxSamples
func passSampleCounts(maxSamples int) []int {
	if maxSamples <= 1 {
		return []int{1}
	}
	var counts []int
	for samples := 1; samples < maxSamples; samples *= 2 {
		counts = append(counts, samples)
	}
	return append(counts, maxSamples)
}

func parseRenderRequest(r *http.Request) (RenderRequest, error) {
	req := RenderRequest{
		Width:   400,
		Samples: 20,
		Depth:   15,
		Workers: 0,
		Seed:    42,
	}

	query := r.URL.Query()
	for name, target := range map[string]*int{
		"width":   &req.Width,
		"samples": &req.Samples,
		"depth":   &req.Depth,
		"workers": &req.Workers,
	} {
		if raw := query.Get(name); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return req, fmt.Errorf("invalid %s %q", name, raw)
			}
			*target = value
		}
	}
	if raw := query.Get("seed"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid seed %q", raw)
		}
		req.Seed = value
	}

	if req.Width <= 0 || req.Width > 4096 {
		return req, fmt.Errorf("width %d out of range (1-4096)", req.Width)
	}
	if req.Samples <= 0 || req.Samples > 1000 {
		return req, fmt.Errorf("samples %d out of range (1-1000)", req.Samples)
	}
	if req.Depth <= 0 || req.Depth > 100 {
		return req, fmt.Errorf("depth %d out of range (1-100)", req.Depth)
	}
	return req, nil
}

func (s *Server) sendSSEUpdate(w http.ResponseWriter, flusher http.Flusher, update ProgressUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

func (s *Server) sendSSEError(w http.ResponseWriter, message string) {
	fmt.Fprintf(w, "event: error\ndata: %s\n\n", message)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
