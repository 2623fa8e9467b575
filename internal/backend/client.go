package backend

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

var (
	// ErrUnavailable covers network errors and non-2xx answers from the
	// shop backend. Callers decide whether to retry or surface it.
	ErrUnavailable = errors.New("shop backend unavailable")

	// ErrCheckoutRejected means the backend answered but refused the order.
	ErrCheckoutRejected = errors.New("checkout rejected by backend")
)

// Client talks to the remote shop API over HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	user    domain.CheckoutUser
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, user domain.CheckoutUser, logger *zap.Logger) *Client {
	if logger == nil {
		panic("backend: client constructed without logger")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		user:   user,
		logger: logger,
	}
}
