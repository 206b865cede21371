package ecode

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// Table maps a status code to its title.
type Table map[int]string

var defaultSuccessCodes = Table{
	http.StatusOK:       "200 OK",
	http.StatusCreated:  "201 Created",
	http.StatusAccepted: "202 Accepted",
}

var defaultErrorCodes = Table{
	400: "400 Bad Request",
	401: "401 Unauthorized",
	402: "402 Payment Required",
	403: "403 Forbidden",
	404: "404 Not Found",
	405: "405 Method Not Allowed",
	406: "406 Not Acceptable",
	407: "407 Proxy Authentication Required",
	408: "408 Request Timeout",
	409: "409 Conflict",
	410: "410 Gone",
	411: "411 Length Required",
	412: "412 Precondition Failed",
	413: "413 Payload Too Large",
	414: "414 Request-URI Too Long",
	415: "415 Unsupported Media Type",
	416: "416 Requested Range Not Satisfiable",
	417: "417 Expectation Failed",
	418: "418 I'm a teapot",
	421: "421 Misdirected Request",
	422: "422 Unprocessable Entity",
	423: "423 Locked",
	424: "424 Failed Dependency",
	426: "426 Upgrade Required",
	428: "428 Precondition Required",
	429: "429 Too Many Requests",
	431: "431 Request Header Fields Too Large",
	444: "444 Connection Closed Without Response",
	451: "451 Unavailable For Legal Reasons",
	499: "499 Client Closed Request",
}

// SuccessCodes returns a copy of the default success catalog.
func SuccessCodes() Table {
	return defaultSuccessCodes.Clone()
}

// ErrorCodes returns a copy of the default error catalog.
func ErrorCodes() Table {
	return defaultErrorCodes.Clone()
}

// Clone returns a shallow copy of the table. A nil table clones to an empty one.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for code, title := range t {
		c[code] = title
	}
	return c
}

// Title returns the title bound to code.
func (t Table) Title(code int) (string, bool) {
	title, ok := t[code]
	return title, ok
}

// Has reports whether code is part of the table.
func (t Table) Has(code int) bool {
	_, ok := t[code]
	return ok
}

// Keys returns the codes in ascending order.
func (t Table) Keys() []int {
	keys := make([]int, 0, len(t))
	for code := range t {
		keys = append(keys, code)
	}
	sort.Ints(keys)
	return keys
}

// String joins the codes, e.g. "200, 201, 202".
func (t Table) String() string {
	keys := t.Keys()
	parts := make([]string, len(keys))
	for i, code := range keys {
		parts[i] = strconv.Itoa(code)
	}
	return strings.Join(parts, ", ")
}

// ParseTable converts a string keyed map, as produced by config decoders,
// into a Table. Keys must be base 10 integers and distinct once parsed.
func ParseTable(raw map[string]string) (Table, error) {
	t := make(Table, len(raw))
	for k, title := range raw {
		code, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("invalid status code %q: %w", k, err)
		}
		if t.Has(code) {
			return nil, fmt.Errorf("duplicate status code %d", code)
		}
		t[code] = title
	}
	return t, nil
}
