// Package notification contains the in-app Notification record, per-channel
// Delivery records, and per-user Preferences. Routing policy (feature flag,
// channel preference, category preference) lives with the router; this
// package only models the data and the per-user gates.
package notification
