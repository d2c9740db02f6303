// Package client implements the APRS-IS TCP feed client of spec.md §6: it
// opens a connection, logs in, and delivers line-delimited frames to a
// callback interface as they arrive.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"aprsparse"
	"aprsparse/qconstruct"
)

const (
	defaultHost   = "rotate.aprs.net"
	defaultPort   = 14580
	defaultFilter = "t/poimqstunw"
)

// Callbacks receives events from a running Client. Any method left nil is
// simply not called.
type Callbacks struct {
	GotPacket    func(raw string, sequence int)
	GotComment   func(raw string)
	Disconnected func(reason string)
}

// Client is a single APRS-IS feed connection.
type Client struct {
	Callsign string
	Passcode string
	Software string
	Version  string
	Host     string
	Port     int
	Filter   string

	// QConstruct, when set, makes Uplink rewrite an outbound packet's path
	// per the Q construct rules before transmitting it.
	QConstruct *qconstruct.Config

	logger    aprsparse.Logger
	callbacks Callbacks
	clock     aprsparse.Clock

	conn     net.Conn
	reader   *bufio.Reader
	sequence int
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger overrides the default charmbracelet/log-backed logger.
func WithLogger(logger aprsparse.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithClock overrides the default wall-clock source.
func WithClock(clock aprsparse.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// WithFilter sets the APRS-IS server-side filter string.
func WithFilter(filter string) Option {
	return func(c *Client) { c.Filter = filter }
}

// WithQConstruct enables outbound Q construct path rewriting (see Uplink).
func WithQConstruct(config *qconstruct.Config) Option {
	return func(c *Client) { c.QConstruct = config }
}

// WithSoftware sets the software/version pair reported on login.
func WithSoftware(software, version string) Option {
	return func(c *Client) {
		c.Software = software
		c.Version = version
	}
}

// New builds a Client for callsign, authenticated with passcode (an empty
// passcode logs in read-only). Host and Port start as
// rotate.aprs.net:14580; set the fields to connect elsewhere.
func New(callsign, passcode string, callbacks Callbacks, options ...Option) *Client {
	c := &Client{
		Callsign:  strings.ToUpper(strings.TrimSpace(callsign)),
		Passcode:  passcode,
		Software:  "aprsparse",
		Version:   "1.0",
		Host:      defaultHost,
		Port:      defaultPort,
		Filter:    defaultFilter,
		callbacks: callbacks,
		logger:    aprsparse.NewLogger(),
		clock:     aprsparse.SystemClock{},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Connect dials the server, logs in, and blocks reading frames until the
// connection closes. ctx is checked before each line is read; a read that
// is already waiting for a line is not interrupted by cancelling ctx.
func (c *Client) Connect(ctx context.Context) error {
	address := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		c.logger.Error("dial failed", "address", address, "err", err)
		return err
	}
	c.conn = conn
	c.logger.Info("connected", "address", address)

	if err := c.login(ctx); err != nil {
		_ = c.conn.Close()
		return err
	}

	return c.readLoop(ctx)
}

func (c *Client) login(ctx context.Context) error {
	passcodeStr := c.Passcode
	if passcodeStr == "" {
		passcodeStr = "-1"
	}
	loginLine := fmt.Sprintf("user %s pass %s %s %s filter %s\r\n",
		c.Callsign, passcodeStr, c.Software, c.Version, c.Filter)

	if _, err := c.conn.Write([]byte(loginLine)); err != nil {
		c.logger.Error("login write failed", "err", err)
		return err
	}

	reader := bufio.NewReader(c.conn)

	banner, err := reader.ReadString('\n')
	if err != nil {
		c.logger.Error("failed reading banner", "err", err)
		return err
	}
	if !strings.HasPrefix(banner, "# ") {
		return errors.New("server did not send a '# ' banner line")
	}
	c.logger.Debug("banner", "line", strings.TrimSpace(banner))

	resp, err := reader.ReadString('\n')
	if err != nil {
		c.logger.Error("failed reading login response", "err", err)
		return err
	}
	want := fmt.Sprintf("# logresp %s verified", c.Callsign)
	if !strings.HasPrefix(strings.TrimSpace(resp), want) && passcodeStr != "-1" {
		return fmt.Errorf("login rejected: %q", strings.TrimSpace(resp))
	}
	c.logger.Info("logged in", "callsign", c.Callsign)

	c.reader = reader
	return nil
}

func (c *Client) readLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.disconnect("context cancelled")
			return ctx.Err()
		default:
		}

		line, err := c.reader.ReadString('\n')
		if err != nil {
			reason := err.Error()
			c.disconnect(reason)
			return err
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "# ") {
			if c.callbacks.GotComment != nil {
				c.callbacks.GotComment(line)
			}
			continue
		}

		c.sequence++
		if c.callbacks.GotPacket != nil {
			c.callbacks.GotPacket(line, c.sequence)
		}
	}
}

func (c *Client) disconnect(reason string) {
	c.logger.Warn("disconnected", "reason", reason)
	if c.callbacks.Disconnected != nil {
		c.callbacks.Disconnected(reason)
	}
}

// Send writes a raw frame to the server, appending the line terminator.
func (c *Client) Send(raw string) error {
	_, err := c.conn.Write([]byte(raw + "\r\n"))
	return err
}

// Close shuts down the underlying connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
