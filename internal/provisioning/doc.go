// Package provisioning implements the site import and bulk deletion
// workflows against the controller.
//
// The importer processes one row at a time. Within a row the call sequence
// is strictly ordered (site, zones, uplinks, zone rename, network update)
// because each call depends on identifiers returned by earlier ones. A
// rejected mutation is reported and the row carries on; a failed site
// creation aborts the rest of that row; a failed read aborts the run.
package provisioning
