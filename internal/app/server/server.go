package server

import (
	"fmt"
	"net"

	"github.com/hnimtadd/craft-redis/internal/redis"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Port int
}

type Server struct {
	opts    Options
	handler *redis.Controller
	logger  *logrus.Logger
}

func NewServer(handler *redis.Controller, opts Options, logger *logrus.Logger) *Server {
	return &Server{
		handler: handler,
		opts:    opts,
		logger:  logger,
	}
}

func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("0.0.0.0:%d", s.opts.Port)
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to port %d: %w", s.opts.Port, err)
	}
	return s.Serve(l)
}

// Serve accepts connections on l until it fails, handling each one in its
// own goroutine.
func (s *Server) Serve(l net.Listener) error {
	defer l.Close()
	s.logger.Info("Ready to accept connections tcp at ", l.Addr())

	for {
		conn, err := l.Accept()
		if err != nil {
			return fmt.Errorf("failed to accept connection: %w", err)
		}
		go s.handler.Serve(conn)
	}
}
