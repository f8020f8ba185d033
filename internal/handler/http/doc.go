// Package http is the HTTP transport of the contact-keeper server.
//
// It wires the chi router, the request handlers for the user and persons
// endpoints, and the middleware stack: trace ids, access logging, gzip
// transcoding and JWT authentication. Requests that pass the stack are
// delegated to the service layer.
package http
