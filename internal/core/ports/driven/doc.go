// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KeywordPlanner: Generates keyword ideas from seed keywords
//   - ResultExporter: Persists keyword ideas to a file
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Run history persistence. Without it, `history` is empty
//     and runs are not recorded.
//   - AccountManager: Test account provisioning under a manager account.
//   - CodeReceiver: Loopback OAuth callback. Only needed for `auth login`.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
