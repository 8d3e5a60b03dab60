// Package http implements the stub goals API used by the sync engine in
// development and tests.
//
// It exposes the REST collection GET/POST /goals and PUT/DELETE
// /goals/{serverId} behind bearer token authentication, plus /version and
// /metrics. Tracing, access logging and request metrics are handled here
// before requests are delegated to the service layer.
package http
