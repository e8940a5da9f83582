package jobset

import (
	"bytes"
	"encoding/json"
)

// Marshal encodes v the way jobsets are written out: compact, without HTML
// escaping, no trailing newline. Flake URIs keep their literal "&".
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
