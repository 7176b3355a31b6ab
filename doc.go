// Package roomapi implements the room-api service which provisions
// short-lived, agent-bound LiveKit rooms for voice assistant sessions.
//
// The service provides:
//   - Room creation with agent metadata and automatic timeout closure
//   - Idempotent room closure with chat duration accounting
//   - LiveKit media-access token generation for room participants
//   - Short-lived API credentials (issue, verify, revoke)
//   - Occupancy synchronization via LiveKit polling
//
// For more information, see the README.md file.
package roomapi
