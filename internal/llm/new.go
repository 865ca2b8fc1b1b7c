package llm

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

const (
	defaultTimeout      = time.Hour
	defaultProbeTimeout = 5 * time.Second
)

type Options struct {
	APIURL       string
	Timeout      time.Duration
	ProbeTimeout time.Duration
	// HTTPClient overrides the transport; its Timeout is ignored in favour of the ones above.
	HTTPClient *http.Client
	Logger     logger.Logger
}

type implClient struct {
	apiURL       string
	timeout      time.Duration
	probeTimeout time.Duration
	http         *http.Client
	logger       logger.Logger
}

// New creates a Client for opts.APIURL
func New(opts Options) Client {
	c := &implClient{
		apiURL:       opts.APIURL,
		timeout:      opts.Timeout,
		probeTimeout: opts.ProbeTimeout,
		http:         opts.HTTPClient,
		logger:       opts.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.probeTimeout <= 0 {
		c.probeTimeout = defaultProbeTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = logger.Nop()
	}
	return c
}

func (c *implClient) APIURL() string {
	return c.apiURL
}
