// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package provider defines the contract between the OAI-PMH responder core
and the backend that actually stores records, sets and formats.

The responder never touches storage itself. For every verb it asks a
[Provider] for the verb-specific payload: a repository identity, a
stream of headers, a stream of (header, record) items, or a stream of
format or set descriptors. Streams are pull-based cursors so unbounded
result sets are consumed one element at a time.

Backends advertise capabilities by implementation: an operation a
backend does not support returns [ErrNotSupported], which the responder
reports to the caller as a capability error. Resumption tokens are
opaque to this package; they are issued and interpreted by the backend
alone and passed through verbatim.
*/
package provider
