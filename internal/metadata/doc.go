// Package metadata builds and serializes CHIP-0007 metadata documents.
//
// # Overview
//
// Each CSV row becomes one Document:
//
//	{"format": "CHIP-0007", "name": ..., "description": ...,
//	 "miniting_tool": <team>, "sensitive_content": false,
//	 "series_number": ..., "series_total": <rows in the run>,
//	 "attributes": [{"trait_type": "gender", "value": ...}, ...],
//	 "collection": {"name": ..., "id": <row UUID>,
//	                "attributes": [{"type": "description", "value": ...}]}}
//
// The misspelled "miniting_tool" key is part of the digest of every ticket
// already issued and must not be corrected.
//
// # Attributes
//
// The Attributes column is "trait: value; trait: value". If any segment does
// not split into exactly two parts on ':', the row keeps the raw string as
// its only attribute and loses the gender entry. This is all-or-nothing per
// row; see ParseAttributes.
//
// # Canonical Form
//
// Encode writes keys in document order with ", " and ": " separators and
// escapes every non-printable or non-ASCII rune as \uXXXX. Identical
// documents always encode to identical bytes.
package metadata
