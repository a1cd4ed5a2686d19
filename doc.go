// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package pyoai implements the responder side of the OAI-PMH metadata
harvesting protocol: it turns backend-supplied repository identity,
record headers, metadata records and format descriptors into
protocol-compliant, namespace-qualified XML response documents.

# Specifications Implemented

  - OAI-PMH 2.0: http://www.openarchives.org/OAI/openarchivesprotocol.html
  - Dublin Core 1.1: http://purl.org/dc/elements/1.1/

# Package Structure

The library is organized into the following packages:

	github.com/miku/pyoai/pkg/provider  - backend contract: repository data types and cursors
	github.com/miku/pyoai/pkg/datestamp - protocol datestamp formatting and parsing
	github.com/miku/pyoai/pkg/metadata  - metadata writer registry and the oai_dc writer
	github.com/miku/pyoai/pkg/document  - per-verb response document construction
	github.com/miku/pyoai/pkg/responder - verb dispatch, serialization and validation

# Quick Start

To serve a repository:

	import (
	    "github.com/miku/pyoai/pkg/responder"
	)

	// backend implements provider.Provider
	r, err := responder.New(backend)
	if err != nil {
	    log.Fatal(err)
	}

	body, err := r.Handle("ListRecords", responder.Arguments{Prefix: "oai_dc"})

The returned bytes are a complete OAI-PMH response document, validated
against the protocol's envelope structure before being handed back.

Transport is out of scope: the caller decides how verbs arrive and how
the response bytes leave the process.
*/
package pyoai
