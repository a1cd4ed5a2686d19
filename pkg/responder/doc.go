// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package responder is the protocol entry point of the OAI-PMH core: it
resolves verb names, validates argument sets, runs the document engine
and serializes the result, gating it through envelope validation before
any bytes reach the caller.

Verbs are a fixed enumeration of the six protocol operations. Unknown
names fail with [ErrBadVerb]; argument sets that do not match the
resolved verb fail with [ErrBadArgument] before the backend is queried.

The responder holds no cross-call state. Its writer registry is frozen
when [New] returns, so concurrent Handle calls are independent.
*/
package responder
