package costing

import (
	"fmt"
)

// DiagnosticKind classifies a non-fatal calculation failure
type DiagnosticKind int

const (
	// LookupMiss means a reference table key was absent; the component
	// contributed zero.
	LookupMiss DiagnosticKind = iota
	// DivisionGuard means a denominator would have been zero or negative and
	// was substituted with a safe floor.
	DivisionGuard
	// ConfigMissing means a required configuration record for a pair was
	// absent and the pair was skipped.
	ConfigMissing
	// ComputationError means an unexpected failure inside a component was
	// caught at the component boundary.
	ComputationError
)

// String method for DiagnosticKind enum
func (k DiagnosticKind) String() string {
	switch k {
	case LookupMiss:
		return "LookupMiss"
	case DivisionGuard:
		return "DivisionGuard"
	case ConfigMissing:
		return "ConfigMissing"
	case ComputationError:
		return "ComputationError"
	default:
		return "Unknown"
	}
}

// Diagnostic represents one recorded, non-fatal calculation failure
type Diagnostic struct {
	Kind      DiagnosticKind `json:"kind"`
	Component string         `json:"component"`
	Message   string         `json:"message"`
}

// String formats the diagnostic for human consumption.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s]: %s", d.Component, d.Kind, d.Message)
}

// Collector accumulates diagnostics for exactly one calculation invocation.
// Each call to the calculator owns its own collector, so concurrent batch
// evaluation needs no shared mutable log.
type Collector struct {
	diags []Diagnostic
}

// NewCollector creates an empty diagnostics collector
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a diagnostic.
func (c *Collector) Add(kind DiagnosticKind, component, format string, args ...interface{}) {
	c.diags = append(c.diags, Diagnostic{
		Kind:      kind,
		Component: component,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns all recorded diagnostics in insertion order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}

// HasKind reports whether a diagnostic of the given kind was recorded.
func (c *Collector) HasKind(kind DiagnosticKind) bool {
	for _, d := range c.diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
