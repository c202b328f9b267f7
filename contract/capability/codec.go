package capability

import "encoding/json"

// JSONCodec is the default Codec. Its zero value is ready to use, which is what
// lets constructors fill a codec slot the caller did not specify.
type JSONCodec struct{}

// Marshal encodes v as JSON.
func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes JSON data into v.
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

var _ Codec = JSONCodec{}
