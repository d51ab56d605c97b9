// Package manifest contains the delivery manifest aggregate: one day's
// instance of a route, with an ordered list of client stops. A manifest is
// unique per (route, date) and only completes once every stop has been
// resolved as visited or skipped.
package manifest
