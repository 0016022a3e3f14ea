// Package models defines the response types returned by the Fast Note Sync
// Service. Every type is a passive value object built from the loosely typed
// JSON object the server sends; constructors are total over arbitrary input
// so that new server-side fields never break older clients. The exact input
// object is retained on each value's Raw field.
package models

import "github.com/mitchellh/mapstructure"

// decode copies known fields from d into out. Decoding is deliberately
// best-effort: unknown keys are ignored and a mistyped value leaves its
// field at the zero value, which keeps constructors total.
func decode(d map[string]any, out any) {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return
	}
	_ = dec.Decode(d)
}

// rawCopy returns d itself, or an empty map when d is nil, so Raw is always
// non-nil.
func rawCopy(d map[string]any) map[string]any {
	if d == nil {
		return map[string]any{}
	}
	return d
}
