// Package schema is the contract every versioned shared-language type
// satisfies.
//
// A type is declared once as a Class (current version) or LegacyClass
// (superseded version) and produces immutable Values. Decoding a document
// against a class is strict and runs in a fixed order:
//
//  1. every key, at any depth, must be wire case (WireCaseError)
//  2. every key must be a recognized field (ClosedSchemaError)
//  3. TypeName and Version, when present, must equal the declared ones
//  4. every field is bound and checked against its property format
//  5. every axiom of the type is checked against the bound candidate
//
// Failures in steps 3 to 5 are aggregated into one ValidationError. Trusted
// in-process construction goes through the same path, so a Value that exists
// has passed every check.
package schema
