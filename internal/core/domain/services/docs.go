// Package services contains the stateless domain services of the production
// core: the SLA evaluator that classifies orders against their promise
// deadline, and the alert evaluator that folds per-unit KPI, SLA, manifest
// and NPS signals into network-wide executive alerts.
//
// Both services are pure: given the same inputs (including the clock value)
// they return the same outputs and touch nothing else. Storage access happens
// in the application layer; these services only encode the rules.
package services
