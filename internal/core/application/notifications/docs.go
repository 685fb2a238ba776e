// Package notifications implements the routing decision logic for outbound
// messages: whether an event reaches a user and through which channels.
//
// The in-app record is always written; it is the source of truth for "what
// happened". External channels are gated three times: by the deployment
// feature flag, by the user's channel preference, and by the user's category
// preference. Actual delivery is an external collaborator behind the
// Deliverer port. Routing is best effort end to end: no failure here may
// fail the operation that triggered it.
package notifications
