// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package server exposes read-only views of a sale over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/sale"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Reader is the read side of a sale.
type Reader interface {
	Status() sale.Status
	MetaID(unitID uint64) (uint64, error)
	TokenURI(unitID uint64) (string, error)
}

// Source returns the sale to answer a request from. It is called once per
// request so that state written by other processes is picked up.
type Source func() (Reader, error)

type Server struct {
	source   Source
	gatherer prometheus.Gatherer
	log      *zap.Logger
}

func New(source Source, gatherer prometheus.Gatherer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{source: source, gatherer: gatherer, log: log}
}

type phaseResponse struct {
	Now             uint64 `json:"now"`
	Phase           string `json:"phase"`
	PricingMode     string `json:"pricingMode"`
	TotalSupply     uint64 `json:"totalSupply"`
	MaxSupply       uint64 `json:"maxSupply"`
	ReserveMinted   uint64 `json:"reserveMinted"`
	PrivateSupply   uint64 `json:"privateSupply"`
	PublicActivated bool   `json:"publicActivated"`
	Revealed        bool   `json:"revealed"`
}

type priceResponse struct {
	Now     uint64 `json:"now"`
	Mode    string `json:"mode"`
	Elapsed uint64 `json:"elapsed"`
	Price   string `json:"price"`
}

type tokenResponse struct {
	ID     uint64 `json:"id"`
	MetaID uint64 `json:"metaId"`
	URI    string `json:"uri"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Handler routes GET /phase, /price, /token/{id} and /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /phase", s.handlePhase)
	mux.HandleFunc("GET /price", s.handlePrice)
	mux.HandleFunc("GET /token/{id}", s.handleToken)
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return s.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests writes one access log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		s.log.Info("request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: constants.ServerReadTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(lis)
	}()
	s.log.Info("serving sale views", zap.String("address", lis.Addr().String()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) open(w http.ResponseWriter) (Reader, bool) {
	r, err := s.source()
	if err != nil {
		s.log.Error("failed to load sale", zap.Error(err))
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Unavailable", Message: err.Error()})
		return nil, false
	}
	return r, true
}

func (s *Server) handlePhase(w http.ResponseWriter, _ *http.Request) {
	r, ok := s.open(w)
	if !ok {
		return
	}
	st := r.Status()
	s.writeJSON(w, http.StatusOK, phaseResponse{
		Now:             st.Now,
		Phase:           st.Phase.String(),
		PricingMode:     st.Pricing.Mode.String(),
		TotalSupply:     st.TotalSupply,
		MaxSupply:       st.Config.MaxSupply,
		ReserveMinted:   st.ReserveMinted,
		PrivateSupply:   st.PrivateSupply,
		PublicActivated: st.PublicActivated,
		Revealed:        st.Revealed,
	})
}

func (s *Server) handlePrice(w http.ResponseWriter, _ *http.Request) {
	r, ok := s.open(w)
	if !ok {
		return
	}
	st := r.Status()
	s.writeJSON(w, http.StatusOK, priceResponse{
		Now:     st.Now,
		Mode:    st.Pricing.Mode.String(),
		Elapsed: st.Pricing.Elapsed,
		Price:   st.Price.String(),
	})
}

func (s *Server) handleToken(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseUint(req.PathValue("id"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   constants.ErrInvalidValue.Error(),
			Message: "token id must be an unsigned integer",
		})
		return
	}
	r, ok := s.open(w)
	if !ok {
		return
	}
	uri, err := r.TokenURI(id)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: constants.ErrorKind(err), Message: err.Error()})
		return
	}
	metaID, err := r.MetaID(id)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: constants.ErrorKind(err), Message: err.Error()})
		return
	}
	// the mapping is public before reveal, only the URI is withheld
	s.writeJSON(w, http.StatusOK, tokenResponse{ID: id, MetaID: metaID, URI: uri})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to write response", zap.Error(err))
	}
}
