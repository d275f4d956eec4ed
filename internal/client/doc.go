// SPDX-License-Identifier: Apache-2.0

// Package client implements the client application runtime.
//
// It wires the messaging session, key rotation, and ephemeral message
// bookkeeping into a single process lifecycle.
package client
