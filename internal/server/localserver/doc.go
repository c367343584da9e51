// Package localserver serves the numera HTTP API on a Unix domain socket.
//
// The socket is meant for same-host tooling such as numera-cli. Access is
// limited by file permissions: the socket is created with mode 0600.
package localserver
