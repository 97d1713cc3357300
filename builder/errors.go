// SPDX-License-Identifier: MIT
// Package: swift/builder
//
// errors.go — sentinel errors for call-order/programmer-error conditions.
//
// Ordinary constraint violations never surface as a Go error:
// AddRequirement and friends return a ConstraintResult and let the
// Diagnostics sink carry detail. These sentinels instead guard the
// Builder's own lifecycle discipline (Finalize exactly once,
// GenericSignature only after Finalize) and reject a nil
// AddGenericSignature argument.

package builder

import "errors"

// ErrAlreadyFinalized indicates Finalize was called a second time on the
// same Builder; a Builder is a one-shot object per generic declaration.
var ErrAlreadyFinalized = errors.New("builder: already finalized")

// ErrNotFinalized indicates GenericSignature was called before Finalize.
var ErrNotFinalized = errors.New("builder: not finalized yet")

// ErrNilGenericSignature indicates AddGenericSignature received nil.
var ErrNilGenericSignature = errors.New("builder: nil generic signature")
