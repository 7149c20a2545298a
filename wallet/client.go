package wallet

import (
	"fmt"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"gowallet/config"
)

// Client talks JSON-RPC to the wallet server over TCP. All wallet
// state lives behind the server; the client only marshals requests and
// renders responses.
type Client struct {
	rpc *rpc.Client
}

// caller is the surface handlers use, so tests can substitute a fake
// server.
type caller interface {
	Call(method string, req, resp any) error
	Close() error
}

// dial is swapped out in tests.
var dial = func(server string) (caller, error) {
	return Dial(server)
}

// Dial connects to the wallet server at the given address. A tcp://
// prefix is accepted and stripped.
func Dial(server string) (*Client, error) {
	addr := strings.TrimPrefix(server, "tcp://")
	c, err := jsonrpc.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wallet server at %s: %w", server, err)
	}
	return &Client{rpc: c}, nil
}

// Call invokes a server method and decodes the response into resp.
func (c *Client) Call(method string, req, resp any) error {
	logging.Debugf("calling %s", method)
	if err := c.rpc.Call(method, req, resp); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return nil
}

// Close tears down the server connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// withClient dials the configured server, runs fn and closes the
// connection afterwards.
func withClient(cfg *config.Config, fn func(caller) error) error {
	c, err := dial(cfg.Server)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
