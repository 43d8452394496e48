// Package domain defines the core business entities for the keyword
// research tool.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - KeywordIdea: A keyword suggestion with its planner metrics
//   - ResearchRequest: Parameters for one keyword idea generation
//   - ResearchRun: A record of a completed research run
//   - AdsCredentials: Everything needed to call the Google Ads API
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
