// Package greeter implements the minimal HTTP responder.
//
// It exposes a single public route, GET /, which always answers with the
// fixed greeting regardless of query parameters or headers. The route is
// registered before the auth middleware so it stays reachable without a key.
package greeter
