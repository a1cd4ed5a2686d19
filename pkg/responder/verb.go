package responder

import (
	"fmt"
	"time"
)

// Verb is one of the six OAI-PMH protocol operations.
type Verb string

const (
	VerbIdentify            Verb = "Identify"
	VerbGetRecord           Verb = "GetRecord"
	VerbListIdentifiers     Verb = "ListIdentifiers"
	VerbListMetadataFormats Verb = "ListMetadataFormats"
	VerbListRecords         Verb = "ListRecords"
	VerbListSets            Verb = "ListSets"
)

// Verbs is the fixed set of protocol verbs.
var Verbs = []Verb{
	VerbIdentify,
	VerbGetRecord,
	VerbListIdentifiers,
	VerbListMetadataFormats,
	VerbListRecords,
	VerbListSets,
}

// ParseVerb matches name against the protocol's literal verb spellings.
// Verb names are case-significant; no transformation is applied.
func ParseVerb(name string) (Verb, error) {
	for _, v := range Verbs {
		if name == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrBadVerb, name)
}

// Arguments carries the keyword arguments of a verb call. Zero values
// mean "absent". Token is opaque and passed to the backend verbatim.
type Arguments struct {
	Identifier string
	Prefix     string
	From       time.Time
	Until      time.Time
	Set        string
	Token      string
}

// argument keywords as they appear on the wire.
const (
	argIdentifier = "identifier"
	argPrefix     = "metadataPrefix"
	argFrom       = "from"
	argUntil      = "until"
	argSet        = "set"
	argToken      = "resumptionToken"
)

// present returns the names of the supplied arguments.
func (a Arguments) present() []string {
	var names []string
	if a.Identifier != "" {
		names = append(names, argIdentifier)
	}
	if a.Prefix != "" {
		names = append(names, argPrefix)
	}
	if !a.From.IsZero() {
		names = append(names, argFrom)
	}
	if !a.Until.IsZero() {
		names = append(names, argUntil)
	}
	if a.Set != "" {
		names = append(names, argSet)
	}
	if a.Token != "" {
		names = append(names, argToken)
	}
	return names
}

// signature declares which arguments a verb requires and additionally
// permits.
type signature struct {
	required []string
	optional []string
}

// signatures is the per-verb argument contract, checked before any
// backend call.
var signatures = map[Verb]signature{
	VerbIdentify: {},
	VerbGetRecord: {
		required: []string{argIdentifier, argPrefix},
	},
	VerbListIdentifiers: {
		required: []string{argPrefix},
		optional: []string{argFrom, argUntil, argSet, argToken},
	},
	VerbListMetadataFormats: {
		optional: []string{argIdentifier},
	},
	VerbListRecords: {
		required: []string{argPrefix},
		optional: []string{argFrom, argUntil, argSet, argToken},
	},
	VerbListSets: {
		optional: []string{argToken},
	},
}

// checkArguments verifies the supplied argument set against the verb's
// signature.
func checkArguments(verb Verb, args Arguments) error {
	sig := signatures[verb]
	supplied := args.present()

	has := func(name string) bool {
		for _, s := range supplied {
			if s == name {
				return true
			}
		}
		return false
	}
	allowed := func(name string) bool {
		for _, s := range sig.required {
			if s == name {
				return true
			}
		}
		for _, s := range sig.optional {
			if s == name {
				return true
			}
		}
		return false
	}

	for _, name := range sig.required {
		if !has(name) {
			return fmt.Errorf("%w: %s requires %s", ErrBadArgument, verb, name)
		}
	}
	for _, name := range supplied {
		if !allowed(name) {
			return fmt.Errorf("%w: %s does not accept %s", ErrBadArgument, verb, name)
		}
	}
	return nil
}
