package network

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"smartcloth/internal/engine"
	"smartcloth/internal/logger"
	"smartcloth/internal/models"
)

const (
	defaultDialTimeout = 2 * time.Second
	// interruptPoll bounds how long a barcode read waits before checking
	// for a button press again.
	interruptPoll = 50 * time.Millisecond
)

// Client talks to the network module over TCP, one connection per request.
// Every call is bounded by the deadline of its context.
type Client struct {
	addr        string
	dialTimeout time.Duration
	log         *logger.Logger
}

var _ engine.Network = (*Client)(nil)

func NewClient(addr string, dialTimeout time.Duration, log *logger.Logger) *Client {
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	return &Client{addr: addr, dialTimeout: dialTimeout, log: logger.OrNop(log)}
}

// Ping checks that the module is answering.
func (c *Client) Ping(ctx context.Context) error {
	s, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	reply, err := s.request(cmdPing)
	if err != nil {
		return err
	}
	if reply != replyPong {
		return fmt.Errorf("unexpected ping reply %q", reply)
	}
	return nil
}

func (c *Client) CheckConnectivity(ctx context.Context) error {
	s, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	reply, err := s.request(cmdCheckWifi)
	switch {
	case err != nil:
		// A module that does not answer is treated as offline.
		return fmt.Errorf("%w: %v", engine.ErrNoConnectivity, err)
	case reply == replyWifiOK:
		return nil
	case reply == replyNoWifi:
		return engine.ErrNoConnectivity
	}
	return fmt.Errorf("%w: unexpected reply %q", engine.ErrNoConnectivity, reply)
}

// ReadBarcode asks the module to scan and waits for the code, giving up as
// soon as interrupted reports true.
func (c *Client) ReadBarcode(ctx context.Context, interrupted func() bool) (string, error) {
	s, err := c.open(ctx)
	if err != nil {
		return "", err
	}
	defer s.close()

	if err := s.send(cmdGetBarcode); err != nil {
		return "", err
	}

	var partial strings.Builder
	for {
		if interrupted() {
			return "", engine.ErrInterrupted
		}
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", engine.ErrTimeout, err)
		}

		now := time.Now()
		deadline := now.Add(interruptPoll)
		if d, ok := ctx.Deadline(); ok {
			if !now.Before(d) {
				return "", fmt.Errorf("%w: barcode read deadline passed", engine.ErrTimeout)
			}
			if d.Before(deadline) {
				deadline = d
			}
		}
		_ = s.conn.SetReadDeadline(deadline)

		chunk, err := s.r.ReadString('\n')
		partial.WriteString(chunk)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return "", fmt.Errorf("read barcode: %w", err)
		}

		reply := strings.TrimSpace(partial.String())
		switch {
		case strings.HasPrefix(reply, replyBarcode):
			code := strings.TrimPrefix(reply, replyBarcode)
			c.log.Debugw("network_barcode", "barcode", code)
			return code, nil
		case reply == replyNoBarcode:
			return "", engine.ErrNotRead
		case reply == replyNoWifi:
			return "", engine.ErrNoConnectivity
		}
		return "", fmt.Errorf("%w: unexpected reply %q", engine.ErrNotRead, reply)
	}
}

func (c *Client) LookupProduct(ctx context.Context, code string) (models.Product, error) {
	s, err := c.open(ctx)
	if err != nil {
		return models.Product{}, err
	}
	defer s.close()

	reply, err := s.request(cmdGetProduct + code)
	if err != nil {
		return models.Product{}, err
	}
	switch {
	case strings.HasPrefix(reply, replyProduct):
		return parseProduct(reply)
	case reply == replyNoProduct:
		return models.Product{}, engine.ErrNotFound
	case reply == replyProductTimeout:
		return models.Product{}, engine.ErrTimeout
	case reply == replyNoWifi:
		return models.Product{}, engine.ErrNoConnectivity
	case strings.HasPrefix(reply, replyHTTPError):
		return models.Product{}, parseHTTPError(reply)
	}
	return models.Product{}, fmt.Errorf("unexpected product reply %q", reply)
}

// UploadMeal sends a saved meal to the module, which posts it to the
// remote database.
func (c *Client) UploadMeal(ctx context.Context, meal models.Meal) error {
	s, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	reply, err := s.request(cmdSave)
	if err != nil {
		return err
	}
	if reply == replyNoWifi {
		return engine.ErrNoConnectivity
	}
	if reply != replyWaitingForData {
		return fmt.Errorf("unexpected save reply %q", reply)
	}

	if err := s.send(encodeMeal(meal)...); err != nil {
		return err
	}
	reply, err = s.receive()
	if err != nil {
		return err
	}
	switch {
	case reply == replySavedOK:
		c.log.Infow("network_meal_uploaded", "meal_id", meal.ID, "items", len(meal.Items))
		return nil
	case reply == replyNoWifi:
		return engine.ErrNoConnectivity
	case strings.HasPrefix(reply, replyHTTPError):
		return parseHTTPError(reply)
	}
	return fmt.Errorf("unexpected upload reply %q", reply)
}

type session struct {
	conn net.Conn
	r    *bufio.Reader
}

func (c *Client) open(ctx context.Context) (*session, error) {
	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		c.log.Debugw("network_dial_failed", "addr", c.addr, "error", err)
		return nil, fmt.Errorf("%w: dial %s: %v", engine.ErrNoConnectivity, c.addr, err)
	}
	if d, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(d); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set deadline: %w", err)
		}
	}
	return &session{conn: conn, r: bufio.NewReader(conn)}, nil
}

func (s *session) close() { _ = s.conn.Close() }

func (s *session) send(lines ...string) error {
	for _, l := range lines {
		if _, err := io.WriteString(s.conn, l+"\n"); err != nil {
			return fmt.Errorf("send %q: %w", l, classify(err))
		}
	}
	return nil
}

func (s *session) receive() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("receive: %w", classify(err))
	}
	return strings.TrimSpace(line), nil
}

func (s *session) request(cmd string) (string, error) {
	if err := s.send(cmd); err != nil {
		return "", err
	}
	return s.receive()
}

// classify turns a deadline hit into engine.ErrTimeout.
func classify(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", engine.ErrTimeout, err)
	}
	return err
}
