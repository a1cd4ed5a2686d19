// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package metadata implements the pluggable metadata rendering side of the
OAI-PMH responder: a registry mapping metadataPrefix values to writers,
and the default Dublin Core (oai_dc) writer.

A [Writer] appends exactly one namespaced fragment under the metadata
wrapper of a record. Writers see records only through the
provider.Record contract, a multi-valued field mapping, and must not
assume anything richer.

Registration happens at startup. The registry is frozen before request
handling begins, so concurrent lookups at call time need no locking:

	reg := metadata.NewRegistry()          // oai_dc preinstalled
	reg.Register("marcxml", marcWriter)    // before serving
	reg.Freeze()
*/
package metadata
