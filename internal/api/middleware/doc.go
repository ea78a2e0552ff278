// Package middleware provides HTTP middleware for the catalog API.
package middleware
