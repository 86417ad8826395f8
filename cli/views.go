package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/zoobzio/mbase"
)

// schemaVersion is stamped on the detect, explain and verify results.
const schemaVersion = 1

// CodecInfo is the public view of a codec's metadata.
type CodecInfo struct {
	Name        string            `json:"name" yaml:"name" xml:"name" msgpack:"name" bson:"name" cbor:"name" col:"NAME,20"`
	Aliases     []string          `json:"aliases" yaml:"aliases" xml:"alias" msgpack:"aliases" bson:"aliases" cbor:"aliases"`
	Alphabet    string            `json:"alphabet" yaml:"alphabet" xml:"alphabet" msgpack:"alphabet" bson:"alphabet" cbor:"alphabet"`
	Prefix      string            `json:"multibase_code,omitempty" yaml:"multibase_code,omitempty" xml:"multibase_code,omitempty" msgpack:"multibase_code,omitempty" bson:"multibase_code,omitempty" cbor:"multibase_code,omitempty" col:"PREFIX,8"`
	Padding     mbase.PaddingRule `json:"padding" yaml:"padding" xml:"padding" msgpack:"padding" bson:"padding" cbor:"padding"`
	Case        mbase.CaseClass   `json:"case_sensitivity" yaml:"case_sensitivity" xml:"case_sensitivity" msgpack:"case_sensitivity" bson:"case_sensitivity" cbor:"case_sensitivity"`
	Description string            `json:"description" yaml:"description" xml:"description" msgpack:"description" bson:"description" cbor:"description" col:"DESCRIPTION"`
}

func newCodecInfo(m mbase.Metadata) CodecInfo {
	info := CodecInfo{
		Name:        m.Name,
		Aliases:     m.Aliases,
		Alphabet:    m.Alphabet,
		Padding:     m.Padding,
		Case:        m.Case,
		Description: m.Description,
	}
	if info.Aliases == nil {
		info.Aliases = []string{}
	}
	if m.HasPrefix() {
		info.Prefix = string(m.Prefix)
	}
	return info
}

// CodecList is the result of "list".
type CodecList struct {
	Codecs []CodecInfo `json:"codecs" yaml:"codecs" xml:"codec" msgpack:"codecs" bson:"codecs" cbor:"codecs"`
}

// EncodeResult is the structured result of "enc".
type EncodeResult struct {
	Codec        string `json:"codec" yaml:"codec" xml:"codec" msgpack:"codec" bson:"codec" cbor:"codec"`
	InputLength  int    `json:"input_length" yaml:"input_length" xml:"input_length" msgpack:"input_length" bson:"input_length" cbor:"input_length"`
	Output       string `json:"output" yaml:"output" xml:"output" msgpack:"output" bson:"output" cbor:"output"`
	OutputLength int    `json:"output_length" yaml:"output_length" xml:"output_length" msgpack:"output_length" bson:"output_length" cbor:"output_length"`
	Prefix       string `json:"multibase_prefix,omitempty" yaml:"multibase_prefix,omitempty" xml:"multibase_prefix,omitempty" msgpack:"multibase_prefix,omitempty" bson:"multibase_prefix,omitempty" cbor:"multibase_prefix,omitempty"`
}

// EncodeAllResult is the structured result of "enc --all".
type EncodeAllResult struct {
	InputLength int                 `json:"input_length" yaml:"input_length" xml:"input_length" msgpack:"input_length" bson:"input_length" cbor:"input_length"`
	Results     []EncodeCodecResult `json:"results" yaml:"results" xml:"result" msgpack:"results" bson:"results" cbor:"results"`
}

// EncodeCodecResult is one codec's outcome in "enc --all".
type EncodeCodecResult struct {
	Codec  string `json:"codec" yaml:"codec" xml:"codec" msgpack:"codec" bson:"codec" cbor:"codec"`
	Output string `json:"output,omitempty" yaml:"output,omitempty" xml:"output,omitempty" msgpack:"output,omitempty" bson:"output,omitempty" cbor:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty" xml:"error,omitempty" msgpack:"error,omitempty" bson:"error,omitempty" cbor:"error,omitempty"`
}

// encodeRow is one line of the "enc --all" text table.
type encodeRow struct {
	Codec   string `col:"CODEC,18"`
	Encoded string `col:"ENCODED"`
}

// DecodeResult is the structured result of "dec".
type DecodeResult struct {
	Codec        string  `json:"codec" yaml:"codec" xml:"codec" msgpack:"codec" bson:"codec" cbor:"codec"`
	Input        string  `json:"input" yaml:"input" xml:"input" msgpack:"input" bson:"input" cbor:"input"`
	OutputLength int     `json:"output_length" yaml:"output_length" xml:"output_length" msgpack:"output_length" bson:"output_length" cbor:"output_length"`
	OutputHex    string  `json:"output_hex" yaml:"output_hex" xml:"output_hex" msgpack:"output_hex" bson:"output_hex" cbor:"output_hex"`
	OutputText   *string `json:"output_text" yaml:"output_text" xml:"output_text,omitempty" msgpack:"output_text" bson:"output_text" cbor:"output_text"`
	Prefix       string  `json:"multibase_prefix,omitempty" yaml:"multibase_prefix,omitempty" xml:"multibase_prefix,omitempty" msgpack:"multibase_prefix,omitempty" bson:"multibase_prefix,omitempty" cbor:"multibase_prefix,omitempty"`
}

// DecodeAllResult is the structured result of "dec --all".
type DecodeAllResult struct {
	Input   string              `json:"input" yaml:"input" xml:"input" msgpack:"input" bson:"input" cbor:"input"`
	Results []DecodeCodecResult `json:"results" yaml:"results" xml:"result" msgpack:"results" bson:"results" cbor:"results"`
}

// DecodeCodecResult is one codec's outcome in "dec --all".
type DecodeCodecResult struct {
	Codec        string  `json:"codec" yaml:"codec" xml:"codec" msgpack:"codec" bson:"codec" cbor:"codec"`
	OutputLength *int    `json:"output_length" yaml:"output_length" xml:"output_length,omitempty" msgpack:"output_length" bson:"output_length" cbor:"output_length"`
	OutputHex    *string `json:"output_hex" yaml:"output_hex" xml:"output_hex,omitempty" msgpack:"output_hex" bson:"output_hex" cbor:"output_hex"`
	OutputText   *string `json:"output_text" yaml:"output_text" xml:"output_text,omitempty" msgpack:"output_text" bson:"output_text" cbor:"output_text"`
	Error        *string `json:"error" yaml:"error" xml:"error,omitempty" msgpack:"error" bson:"error" cbor:"error"`
}

// decodeRow is one line of the "dec --all" text table.
type decodeRow struct {
	Codec   string `col:"CODEC,18"`
	Decoded string `col:"DECODED"`
}

// ConvertResult is the structured result of "conv".
type ConvertResult struct {
	From   string `json:"from" yaml:"from" xml:"from" msgpack:"from" bson:"from" cbor:"from"`
	To     string `json:"to" yaml:"to" xml:"to" msgpack:"to" bson:"to" cbor:"to"`
	Output string `json:"output" yaml:"output" xml:"output" msgpack:"output" bson:"output" cbor:"output"`
}

// VerifyResult is the structured result of "verify".
type VerifyResult struct {
	SchemaVersion int     `json:"schema_version" yaml:"schema_version" xml:"schema_version" msgpack:"schema_version" bson:"schema_version" cbor:"schema_version"`
	Valid         bool    `json:"valid" yaml:"valid" xml:"valid" msgpack:"valid" bson:"valid" cbor:"valid"`
	Codec         string  `json:"codec" yaml:"codec" xml:"codec" msgpack:"codec" bson:"codec" cbor:"codec"`
	Error         *string `json:"error" yaml:"error" xml:"error,omitempty" msgpack:"error" bson:"error" cbor:"error"`
}

// DetectResult is the structured result of "detect".
type DetectResult struct {
	SchemaVersion int               `json:"schema_version" yaml:"schema_version" xml:"schema_version" msgpack:"schema_version" bson:"schema_version" cbor:"schema_version"`
	Candidates    []mbase.Candidate `json:"candidates" yaml:"candidates" xml:"candidate" msgpack:"candidates" bson:"candidates" cbor:"candidates"`
	InputPreview  string            `json:"input_preview" yaml:"input_preview" xml:"input_preview" msgpack:"input_preview" bson:"input_preview" cbor:"input_preview"`
}

// decodedText returns data as a string when it is printable text.
func decodedText(data []byte) *string {
	if !printable(data) {
		return nil
	}
	s := string(data)
	return &s
}

// formatDecoded renders one "dec --all" cell: quoted text, or a hex
// prefix with the byte count for binary output.
func formatDecoded(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}
	if printable(data) {
		return fmt.Sprintf("%q", truncate(string(data), 50))
	}
	const maxHexBytes = 25
	if len(data) > maxHexBytes {
		return fmt.Sprintf("[%s...] (%d bytes)", hex.EncodeToString(data[:maxHexBytes]), len(data))
	}
	return fmt.Sprintf("[%s] (%d bytes)", hex.EncodeToString(data), len(data))
}
