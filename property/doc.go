// Package property decodes tokenized content lines into typed properties
// and writes them back.
//
// Decode dispatches on the property name: each registered name maps to a
// struct holding that property's accepted parameters and its decoded
// value, and X- names map to Proprietary. AppendProperty is the inverse
// and renders a property as one wire line.
//
// # Value Shapes
//
// Single values (NOTE, FN, TEL and the like) keep the raw text between the
// value separator and the line terminator, escape sequences included. List
// values (NICKNAME, CATEGORIES, ORG) and the positions of structured
// values (N, ADR) are escape resolved during decoding and escaped again
// during encoding. URI values are validated and kept byte for byte.
//
// # Alternative Groups
//
// Properties that may repeat implement AlternativeProperty and collect
// into AltIDContainer and MultiAltIDContainer, which resolve the preferred
// representation through the PREF parameter.
package property
