package flexcms

// Warning codes for non-fatal issues absorbed during detection and
// extraction. Degenerate pages (empty filters, empty tabs) are expected
// shapes, not errors; warnings record what was degraded and why.
const (
	// WarnStructuralAmbiguity marks duplicate or unparseable structural
	// widgets. Detection proceeds with the first match.
	WarnStructuralAmbiguity = "structural_ambiguity"

	// WarnConfigLookupMiss marks a missing table rule for an
	// (os, region) pair. Content passes through unfiltered.
	WarnConfigLookupMiss = "config_lookup_miss"

	// WarnMalformedFilterOption marks a filter option missing its value
	// or target attribute. The option is dropped.
	WarnMalformedFilterOption = "malformed_filter_option"

	// WarnMissingContent marks a filter combination whose source
	// fragment could not be located. The group is emitted with empty
	// content.
	WarnMissingContent = "missing_content"
)

// Warning records a non-fatal issue attached to a document's validation
// metadata.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
