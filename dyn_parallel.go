// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread

// Enforcing capability asserts for dynamic construction sites.
//
// The Maybe* aliases cover every position where a bound can be written
// statically. These helpers cover the rest: places where a value of an
// arbitrary interface type is about to be treated as transferable or
// shareable and the static bound cannot be expressed. In the parallel
// build the asserts are real; misuse is a programming error and panics.

package maybesync

import "fmt"

// RequireTransferable returns v unchanged after asserting the transfer
// capability required by the active build mode.
//
// In a parallel build it panics unless the dynamic value implements
// [Transferable]. In a singlethread build it is a no-op.
//
//	pool.submit(maybesync.RequireTransferable(job))
func RequireTransferable[I any](v I) I {
	if _, ok := any(v).(Transferable); !ok {
		panic(fmt.Sprintf("maybesync: %T does not declare Transferable in a parallel build", v))
	}
	return v
}

// RequireShareable returns v unchanged after asserting the share capability
// required by the active build mode. See [RequireTransferable].
func RequireShareable[I any](v I) I {
	if _, ok := any(v).(Shareable); !ok {
		panic(fmt.Sprintf("maybesync: %T does not declare Shareable in a parallel build", v))
	}
	return v
}

// RequireConcurrent returns v unchanged after asserting both capabilities
// required by the active build mode. See [RequireTransferable].
func RequireConcurrent[I any](v I) I {
	if _, ok := any(v).(Concurrent); !ok {
		panic(fmt.Sprintf("maybesync: %T does not declare Transferable and Shareable in a parallel build", v))
	}
	return v
}
