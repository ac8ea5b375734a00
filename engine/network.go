//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"log/slog"
	"net"
	"time"

	"github.com/markkurossi/mpc/p2p"
	"github.com/pkg/errors"
)

// Client connection retry parameters.
const (
	retryConnect   = 1000
	retryDelay     = 10 * time.Millisecond
	connectTimeout = 10 * time.Second
)

// accept listens at addr and accepts one peer connection.
func accept(addr string, log *slog.Logger) (*p2p.Conn, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer ln.Close()

	log.Info("listening for connections", "addr", addr)

	nc, err := ln.Accept()
	if err != nil {
		return nil, err
	}
	log.Info("new connection", "remote", nc.RemoteAddr().String())

	return p2p.NewConn(nc), nil
}

// dial connects to the server at addr. The server may not be
// listening yet so failed attempts are retried.
func dial(addr string, log *slog.Logger) (*p2p.Conn, error) {
	log.Info("connecting", "addr", addr)

	var err error
	for i := 0; i < retryConnect; i++ {
		var nc net.Conn
		nc, err = net.DialTimeout("tcp", addr, connectTimeout)
		if err == nil {
			log.Info("connected", "remote", nc.RemoteAddr().String(),
				"attempts", i+1)
			return p2p.NewConn(nc), nil
		}
		time.Sleep(retryDelay)
	}
	return nil, errors.Wrap(err, "connection failed")
}
