// Package scm provides a client for the SteelConnect Manager REST API.
//
// The controller exposes its configuration model under
// https://{controller}/api/scm.config/1.0/ with HTTP basic authentication.
// List endpoints wrap results in an "items" array; mutation endpoints return
// the created or updated record directly.
package scm
