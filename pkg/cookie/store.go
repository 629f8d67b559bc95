package cookie

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/cookiejar/pkg/logger"
)

const (
	requestHeader  = "Cookie"
	responseHeader = "Set-Cookie"
)

// epoch is the expiry sent to make clients drop a cookie.
var epoch = time.Unix(0, 0).UTC()

// store is the lazily parsed view over the cookies of a single request.
// It is owned by exactly one request and is not safe for concurrent use.
type store struct {
	req      *http.Request
	header   http.Header
	ring     *KeyRing
	defaults Options
	logger   *slog.Logger

	parsed  bool
	entries map[string]string
	order   []string

	// pending holds one Set-Cookie value per name in first-write order;
	// emitted holds the values this store last placed into header.
	pendingNames []string
	pending      map[string]string
	emitted      []emittedValue
}

// emittedValue is a jar-owned Set-Cookie value and its header position.
type emittedValue struct {
	index int
	value string
}

func newStore(r *http.Request, h http.Header, ring *KeyRing, defaults Options, log *slog.Logger) *store {
	if h == nil {
		h = make(http.Header)
	}
	return &store{
		req:      r,
		header:   h,
		ring:     ring,
		defaults: defaults,
		logger:   log,
		pending:  make(map[string]string),
	}
}

// ensureParsed reads the request Cookie header on first use only.
// Pairs that fail to parse are skipped; the first occurrence of a name wins.
func (s *store) ensureParsed() {
	if s.parsed {
		return
	}
	s.parsed = true
	s.entries = make(map[string]string)

	if s.req == nil {
		return
	}

	for _, line := range s.req.Header.Values(requestHeader) {
		for pair := range strings.SplitSeq(line, ";") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			cookies, err := http.ParseCookie(pair)
			if err != nil {
				s.logger.DebugContext(s.context(), "skipping malformed cookie pair", logger.Error(err))
				continue
			}
			c := cookies[0]
			if _, exists := s.entries[c.Name]; exists {
				continue
			}
			s.entries[c.Name] = c.Value
			s.order = append(s.order, c.Name)
		}
	}
}

func (s *store) context() context.Context {
	if s.req == nil {
		return context.Background()
	}
	return s.req.Context()
}

func (s *store) get(name string) (string, bool) {
	s.ensureParsed()
	value, ok := s.entries[name]
	return value, ok
}

func (s *store) set(name string, v Value) error {
	s.ensureParsed()

	var (
		value string
		opts  Options
	)

	switch v := v.(type) {
	case PlainValue:
		value, opts = string(v), s.defaults
	case SignedValue:
		token, err := s.ring.Sign(v.Value)
		if err != nil {
			s.logger.DebugContext(s.context(), "cookie signing failed", logger.Cookie(name), logger.Error(err))
			return fmt.Errorf("sign cookie %q: %w", name, err)
		}
		value, opts = token, applyOptions(s.defaults, v.Options)
	case AttributedValue:
		value, opts = v.Value, applyOptions(s.defaults, v.Options)
	case nil:
		return fmt.Errorf("%w %q: nil value", ErrInvalidCookie, name)
	default:
		return fmt.Errorf("%w %q: unsupported value type %T", ErrInvalidCookie, name, v)
	}

	c := opts.httpCookie(name, value)
	if err := c.Valid(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidCookie, name, err)
	}

	if _, exists := s.entries[name]; !exists {
		s.order = append(s.order, name)
	}
	s.entries[name] = value

	s.emit(name, c.String())
	return nil
}

// remove deletes name and emits a clearing header. Only Path and Domain of
// opts are echoed so the clearing header matches a cookie set on a custom scope.
func (s *store) remove(name string, opts []Option) {
	s.ensureParsed()
	if _, ok := s.entries[name]; !ok {
		return
	}

	delete(s.entries, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })

	scope := applyOptions(Options{}, opts)
	c := &http.Cookie{
		Name:    name,
		Path:    scope.Path,
		Domain:  scope.Domain,
		Expires: epoch,
	}
	s.emit(name, c.String())
}

func (s *store) names() []string {
	s.ensureParsed()
	return slices.Clone(s.order)
}

// emit records the Set-Cookie value for name, replacing any earlier one,
// and rewrites the jar-owned values of the response header. Ownership is
// tracked by position so foreign values equal to a jar value survive.
func (s *store) emit(name, value string) {
	if _, ok := s.pending[name]; !ok {
		s.pendingNames = append(s.pendingNames, name)
	}
	s.pending[name] = value

	current := s.header.Values(responseHeader)
	owned := make([]bool, len(current))
	for _, e := range s.emitted {
		if e.index < len(current) && !owned[e.index] && current[e.index] == e.value {
			owned[e.index] = true
			continue
		}
		// The header was rewritten elsewhere: claim one unowned equal value.
		for i, v := range current {
			if !owned[i] && v == e.value {
				owned[i] = true
				break
			}
		}
	}

	values := make([]string, 0, len(current)+len(s.pendingNames))
	for i, v := range current {
		if !owned[i] {
			values = append(values, v)
		}
	}

	pending := s.pendingValues()
	s.emitted = s.emitted[:0]
	for i, v := range pending {
		s.emitted = append(s.emitted, emittedValue{index: len(values) + i, value: v})
	}
	s.header[responseHeader] = append(values, pending...)
}

func (s *store) pendingValues() []string {
	values := make([]string, 0, len(s.pendingNames))
	for _, name := range s.pendingNames {
		values = append(values, s.pending[name])
	}
	return values
}
