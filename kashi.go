// Package kashi finds song lyrics on third-party web pages, reconstructs
// them as ordered, numbered lines from noisy HTML, and romanizes Japanese
// content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, kagome/).
package kashi
