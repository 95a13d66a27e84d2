// Package migration manages the versioned schema lifecycle of the ParkNow
// store. The schema version is an integer recorded in PRAGMA user_version
// and only ever moves forward; every step is additive and idempotent so
// interrupted upgrades self-heal on the next open. The current version is 4:
// v2 was a historical no-op, v3 introduced the Favorites and Feedback
// tables, v4 added the nullable ProfileImage column to Users.
package migration
