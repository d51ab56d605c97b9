// Package kernel holds the shared value objects of the domain model.
//
// Currently that is the UUID identity type used by every aggregate, entity
// and external reference (units, clients, operators, routes, recipes). The
// zero value of every kernel type is invalid; instances must come from the
// package's constructor functions.
package kernel
