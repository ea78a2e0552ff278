// Package api serves the element catalog over HTTP. It translates requests
// into catalog service calls, validates query parameters, and renders every
// measured number both as its tagged-union JSON form and as formatted text.
package api
