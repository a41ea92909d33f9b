package tui

import (
	"errors"
	"net"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/input"
)

// StartCommandBridge listens on a TCP address and pumps every
// connection's bytes into the decoder, emulating the wireless serial
// link. Multiple controllers may connect at once; their commands
// OR-combine like any other latched input. The returned listener stops
// the bridge when closed.
func StartCommandBridge(addr string, dec *input.Decoder) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pocket-link"})
	logger.Info("command bridge listening", "address", ln.Addr().String())

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if !errors.Is(err, net.ErrClosed) {
					logger.Error("accept failed", "error", err)
				}
				return
			}
			logger.Info("controller connected", "remote", conn.RemoteAddr().String())

			go func(c net.Conn) {
				defer c.Close()
				if err := dec.Pump(c); err != nil {
					logger.Warn("controller dropped", "remote", c.RemoteAddr().String(), "error", err)
					return
				}
				logger.Info("controller disconnected", "remote", c.RemoteAddr().String())
			}(conn)
		}
	}()

	return ln, nil
}
