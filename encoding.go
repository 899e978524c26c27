package opentdb

import "fmt"

// RequestParameter is an option that knows how to place itself into the
// query string of an API request.
type RequestParameter interface {
	ParameterName() string
	ParameterValue() string
}

// EncodingType is the text-escaping convention the API applies to question
// and answer strings. The codes are the API's query-parameter vocabulary and
// must not be changed independently of it.
type EncodingType string

const (
	// EncodingHTML is the wire default: HTML entity encoded text.
	// Its code is empty; the encode parameter is still always emitted.
	EncodingHTML EncodingType = ""

	EncodingLegacyURL EncodingType = "urlLegacy"
	EncodingRFC3986   EncodingType = "url3986"
	EncodingBase64    EncodingType = "base64"
)

var encodingNames = map[EncodingType]string{
	EncodingHTML:      "Default Encoding (HTML Codes)",
	EncodingLegacyURL: "Legacy URL Encoding",
	EncodingRFC3986:   "URL Encoding (RFC 3986)",
	EncodingBase64:    "Base64 Encoding",
}

// ParseEncodingType returns the EncodingType for an API encode code.
// The empty string parses to EncodingHTML.
func ParseEncodingType(code string) (EncodingType, error) {
	enc := EncodingType(code)
	if _, ok := encodingNames[enc]; !ok {
		return EncodingHTML, fmt.Errorf("unsupported encoding code: %q", code)
	}
	return enc, nil
}

// ReadableName returns a human-friendly name for the encoding.
func (e EncodingType) ReadableName() string { return encodingNames[e] }

func (e EncodingType) ParameterName() string { return "encode" }

func (e EncodingType) ParameterValue() string { return string(e) }
