// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/netip"

	"github.com/MKhiriev/hello-backend/internal/app"
	"github.com/MKhiriev/hello-backend/internal/config"
	"github.com/MKhiriev/hello-backend/internal/logger"
	"github.com/go-chi/chi/v5"
)

// routeTable builds the router served by [Server].
type routeTable interface {
	Init() *chi.Mux
}

// Server runs the HTTP transport once.
type Server struct {
	routes routeTable
	cfg    config.Server
	listen func(network, address string) (net.Listener, error)

	listening chan struct{}
	addr      netip.AddrPort

	logger *logger.Logger
}

func NewServer(routes routeTable, cfg config.Server, logger *logger.Logger) *Server {
	logger.Info().Msg("creating new server...")

	return &Server{
		routes:    routes,
		cfg:       cfg,
		listen:    net.Listen,
		listening: make(chan struct{}),
		logger:    logger,
	}
}

// Run executes the startup sequence and blocks until the serve loop ends:
//  1. bind a TCP listener to the configured address;
//  2. build the route table;
//  3. resolve the bound local address and log it;
//  4. serve until the loop fails or ctx is cancelled.
//
// Every failing step aborts the run with a [*StartupError]. A run stopped by
// ctx that shuts down cleanly yields [Completed]. Run must be called at most
// once per Server.
func (s *Server) Run(ctx context.Context) (Outcome, error) {
	listener, err := s.listen("tcp", s.cfg.HTTPAddress)
	if err != nil {
		return outcomeNone, newStartupError(ErrBindTCPListener, err)
	}
	// http.Server closes the listener once serving ends; this covers the
	// early returns below.
	defer listener.Close()

	srv := newHTTPServer(s.routes.Init(), s.cfg, s.logger)

	addr, err := listenerAddress(listener)
	if err != nil {
		return outcomeNone, newStartupError(ErrGetListenerAddress, err)
	}

	s.addr = addr
	close(s.listening)
	s.logger.Info().Msgf("%s %s", app.MsgListening, addr)

	return srv.run(ctx, listener)
}

// Listening is closed once the listener is bound and its address resolved.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// Addr returns the bound local address. It is valid only after Listening
// has been closed.
func (s *Server) Addr() netip.AddrPort {
	return s.addr
}

func listenerAddress(listener net.Listener) (netip.AddrPort, error) {
	addr := listener.Addr()
	if addr == nil {
		return netip.AddrPort{}, errNoListenerAddress
	}

	return netip.ParseAddrPort(addr.String())
}
