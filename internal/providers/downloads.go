package providers

import (
	"context"
	"fmt"

	"github.com/halcyonbrowser/backend/internal/domain/downloads"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Downloads exposes the download log as a catalog service.
type Downloads struct {
	store *downloads.Store
}

// NewDownloads creates a downloads provider.
func NewDownloads(store *downloads.Store) *Downloads {
	return &Downloads{store: store}
}

// Definition returns service metadata
func (d *Downloads) Definition() types.Service {
	return types.Service{
		ID:           "downloads",
		Name:         "Downloads",
		Description:  "Download lifecycle records for the active profile",
		Category:     types.CategoryBrowsing,
		Capabilities: []string{"list", "save", "clear"},
		Tools: []types.Tool{
			{
				ID:          "downloads.list",
				Name:        "List Downloads",
				Description: "List download records, most recent first",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "downloads.save",
				Name:        "Save Download",
				Description: "Upsert a download record by id, keeping its position",
				Parameters: []types.Parameter{
					{Name: "download", Type: "object", Description: "Download record", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "downloads.clear",
				Name:        "Clear Downloads",
				Description: "Replace the download log with an empty set",
				Parameters:  []types.Parameter{},
				Returns:     "boolean",
			},
		},
	}
}

// Execute runs a downloads operation
func (d *Downloads) Execute(_ context.Context, toolID string, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	switch toolID {
	case "downloads.list":
		return success(map[string]interface{}{"downloads": d.store.All()})

	case "downloads.save":
		var item types.DownloadItem
		if err := decodeParam(params, "download", &item); err != nil {
			return failure(err.Error())
		}
		saved, err := d.store.Save(item)
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"download": saved})

	case "downloads.clear":
		if err := d.store.Clear(); err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"cleared": true})

	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
