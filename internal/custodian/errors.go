package custodian

import "errors"

var (
	// ErrKeyUnavailable is returned by Load when no usable key exists:
	// nothing was ever stored, the record was cleared, or the passphrase
	// does not open the wrapped key.
	ErrKeyUnavailable = errors.New("identity key unavailable")

	// ErrStorageCorrupted is returned when a record was found but its
	// contents cannot be a key: truncated blob, undecodable DER, or a
	// non-RSA key. Distinct from ErrKeyUnavailable so operators can tell
	// "never stored" from "stored and damaged".
	ErrStorageCorrupted = errors.New("identity key storage corrupted")

	// ErrCustodianBusy is returned when a Store, Load, or Clear overlaps
	// another in-flight vault operation. The caller retries; the vault is
	// never raced.
	ErrCustodianBusy = errors.New("custodian busy: concurrent vault operation in flight")
)
