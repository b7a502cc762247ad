package adapter

import (
	"github.com/jmgilman/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

// LookupEncoding resolves an IANA encoding name such as "utf-8" or
// "ISO-8859-1".
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidInput, "unknown encoding %q", name)
	}

	if enc == nil {
		return nil, errors.Newf(errors.CodeInvalidInput, "unsupported encoding %q", name)
	}

	return enc, nil
}

// decodeText converts data to a string under the named encoding. UTF-8 input
// is validated strictly: invalid byte sequences are an error rather than
// being replaced.
func decodeText(data []byte, name string) (string, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return "", err
	}

	if enc == unicode.UTF8 {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
			return "", err
		}

		return string(data), nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
