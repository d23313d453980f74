// Package redis opens go-redis clients with retrying connects and exposes
// healthcheck and shutdown hooks for the HTTP server.
package redis
