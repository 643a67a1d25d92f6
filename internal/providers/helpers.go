package providers

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/halcyonbrowser/backend/internal/shared/types"
)

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &message}, nil
}

func stringParam(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}

func optionalString(params map[string]interface{}, key string) string {
	v, _ := params[key].(string)
	return v
}

// decodeParam re-encodes a loosely typed parameter value into a typed
// destination.
func decodeParam(params map[string]interface{}, key string, out any) error {
	raw, ok := params[key]
	if !ok {
		return fmt.Errorf("missing parameter: %s", key)
	}
	data, err := sonic.Marshal(raw)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", key, err)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parameter %s: %w", key, err)
	}
	return nil
}
