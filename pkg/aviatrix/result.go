package aviatrix

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
)

var jsonit = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the decoded outcome of a controller call. Controller payloads
// vary in shape per action (object, list, scalar, or plain text), so Result
// exposes both path projection and typed decoding and lets each wrapper
// narrow the shape it expects.
type Result struct {
	raw  []byte // the results payload (or the whole object when no envelope)
	full []byte // the entire response body
	text bool   // body was not JSON; raw holds the verbatim text
}

// IsText reports whether the controller answered with plain text instead of
// a JSON envelope.
func (r Result) IsText() bool {
	return r.text
}

// Text returns the payload as a string. For plain-text responses this is the
// verbatim body; for JSON payloads it is the raw JSON of the results.
// A JSON string payload is returned unquoted.
func (r Result) Text() string {
	if r.text {
		return string(r.raw)
	}
	v := gjson.ParseBytes(r.raw)
	if v.Type == gjson.String {
		return v.String()
	}
	return string(r.raw)
}

// Raw returns the raw bytes of the results payload.
func (r Result) Raw() []byte {
	return r.raw
}

// Get projects a path out of the results payload using gjson path syntax.
func (r Result) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// Root projects a path out of the whole response object rather than the
// results payload. The login action, for example, carries its CID at the
// top level of the envelope.
func (r Result) Root(path string) gjson.Result {
	return gjson.GetBytes(r.full, path)
}

// Decode unmarshals the results payload into out. Controller payloads are
// loosely typed (numbers sometimes arrive as strings), so decoding is
// performed weakly against the struct's json tags. Plain-text results fail
// with ErrUnexpectedResponse.
func (r Result) Decode(out any) error {
	if r.text {
		return ErrUnexpectedResponse.New("expected a JSON payload, controller sent plain text")
	}
	var v any
	if err := jsonit.Unmarshal(r.raw, &v); err != nil {
		return ErrUnexpectedResponse.MsgErr("invalid results payload", err)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return ErrUnexpectedResponse.MsgErr("failed to build decoder", err)
	}
	if err := dec.Decode(v); err != nil {
		return ErrUnexpectedResponse.MsgErr("results payload has unexpected shape", err)
	}
	return nil
}
