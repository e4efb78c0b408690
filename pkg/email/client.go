package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/astraclean/offerte_backend/config"
)

// Client delivers Messages through one SMTP relay.
type Client struct {
	cfg     Config
	deliver func(*gomail.Message) error
}

func NewFromCentral(cfg config.EmailConfig) (*Client, error) {
	return New(FromCentralConfig(cfg))
}

// New checks that an enabled relay has somewhere to send from and to.
func New(cfg Config) (*Client, error) {
	if cfg.Enabled {
		if strings.TrimSpace(cfg.SMTPHost) == "" {
			return nil, fmt.Errorf("%w: smtp host is required when email is enabled", ErrMisconfigured)
		}
		if strings.TrimSpace(cfg.From) == "" {
			return nil, fmt.Errorf("%w: from address is required when email is enabled", ErrMisconfigured)
		}
	}
	c := &Client{cfg: cfg}
	c.deliver = c.dialer().DialAndSend
	return c, nil
}

func (c *Client) IsEnabled() bool { return c.cfg.Enabled }

// Send composes m and hands it to the relay. The attempt is abandoned once
// ctx is done or the SMTP timeout passes, whichever comes first.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled {
		return ErrDisabled
	}

	msg, err := compose(c.cfg.From, m)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SMTPTimeout())
	defer cancel()

	result := make(chan error, 1)
	go func() { result <- c.deliver(msg) }()

	select {
	case err = <-result:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		return &DeliveryError{Host: c.cfg.SMTPHost, Err: err}
	}
	return nil
}

func (c *Client) dialer() *gomail.Dialer {
	d := gomail.NewDialer(c.cfg.SMTPHost, c.cfg.SMTPPort, c.cfg.SMTPUsername, c.cfg.SMTPPassword)
	d.SSL = c.cfg.SMTPUseTLS
	d.TLSConfig = &tls.Config{ServerName: c.cfg.SMTPHost, MinVersion: tls.VersionTLS12}
	return d
}
