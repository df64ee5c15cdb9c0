package respond

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"mime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encoder encodes response bodies to a wire format.
type Encoder interface {
	ContentType() string
	Encode(w io.Writer, v any) error
}

// jsonCodec encodes JSON.
type jsonCodec struct{}

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// xmlCodec encodes XML.
type xmlCodec struct{}

func (xmlCodec) ContentType() string { return "application/xml" }

func (xmlCodec) Encode(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(v)
}

// yamlCodec encodes YAML.
type yamlCodec struct{}

func (yamlCodec) ContentType() string { return "application/yaml" }

func (yamlCodec) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// codecRegistry holds all registered encoders.
// Index 0 is always JSON (the default).
type codecRegistry struct {
	encoders []Encoder
}

// newCodecRegistry builds a registry with JSON, XML and YAML first, then
// any user-registered encoders.
func newCodecRegistry(userEncoders []Encoder) *codecRegistry {
	cr := &codecRegistry{
		encoders: make([]Encoder, 0, 3+len(userEncoders)),
	}
	cr.encoders = append(cr.encoders, jsonCodec{}, xmlCodec{}, yamlCodec{})
	cr.encoders = append(cr.encoders, userEncoders...)
	return cr
}

// negotiate picks an encoder based on the Accept header value.
// Returns (JSON, true) for empty or */* accept values.
// Returns (nil, false) if an explicit Accept has no match.
func (cr *codecRegistry) negotiate(accept string) (Encoder, bool) {
	if accept == "" {
		return cr.encoders[0], true
	}

	type candidate struct {
		encoder Encoder
		quality float64
	}

	var best candidate
	best.quality = -1

	for part := range strings.SplitSeq(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		q := 1.0
		if qs, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(qs, 64); err == nil {
				q = parsed
			}
		}

		if q <= 0 || q <= best.quality {
			continue
		}

		if mediaType == "*/*" || mediaType == "application/*" {
			best = candidate{encoder: cr.encoders[0], quality: q}
			continue
		}

		for _, enc := range cr.encoders {
			if enc.ContentType() == mediaType {
				best = candidate{encoder: enc, quality: q}
				break
			}
		}
	}

	if best.encoder == nil {
		return nil, false
	}
	return best.encoder, true
}

// contentTypes returns all encoder content types.
func (cr *codecRegistry) contentTypes() []string {
	cts := make([]string, len(cr.encoders))
	for i, enc := range cr.encoders {
		cts[i] = enc.ContentType()
	}
	return cts
}
