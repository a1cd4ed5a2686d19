// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package document builds OAI-PMH response documents.

The [Engine] exposes one operation per protocol verb. Each call
constructs a fresh element tree: the fixed envelope (root with the four
namespace bindings, responseDate, request echo), then the verb body
filled from the backend provider, with metadata fragments delegated to
the writer registry. The tree is returned to the caller for
serialization and discarded afterwards; nothing is cached between
calls.

Backend result streams are consumed lazily, one element per appended
fragment, so unbounded listings never materialize in memory. Any
provider or writer error aborts construction; no partial document is
ever returned.

Argument shape validation is deliberately not done here. The responder
package checks argument sets per verb before the engine runs.
*/
package document
