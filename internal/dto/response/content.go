package response

import "encoding/json"

type ContentResponse struct {
	Key  string          `json:"key"`
	Data json.RawMessage `json:"data"`
}
