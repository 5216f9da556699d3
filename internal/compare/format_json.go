package compare

import (
	"encoding/json"
)

// JSONFormatter renders the comparison as JSON for machine consumers.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a comparison.
func (jf *JSONFormatter) Format(c *Comparison) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(c, "", "  ")
	}
	return json.Marshal(c)
}
