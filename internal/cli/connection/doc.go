// Package connection talks to numera-server over HTTP.
//
// Every response is decoded into the server's envelope. Non-2xx answers
// become *APIError values carrying the server's error code and message.
package connection
