// Package debug provides the remote debug stream capability.
//
// When the server runs under a live-reload supervisor (SERVER_RELOADER), the
// start command attaches a stream to the fixed sink at 0.0.0.0:9000 and tees
// log output into it. The endpoint is deliberately hard-coded; the supervisor
// owns it.
//
// The Attacher interface exists so the attach side effect can be replaced by
// a no-op double in tests.
package debug
