package daygrid

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/JacekPodanowski/ZPI-sub002/types"
)

// LoadRequest decodes a YAML renderer request, for example:
//
//	start_hour: 6
//	end_hour: 22
//	zoom_to_fit: true
//	padding: 30m
//
// The request is not validated until it is passed to NewRenderer.
func LoadRequest(data []byte) (RendererRequest, error) {
	var request RendererRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return RendererRequest{}, fmt.Errorf("failed to decode renderer request: %w", err)
	}
	return request, nil
}

// LoadItems decodes a YAML list of item specs into items.
func LoadItems(data []byte) ([]Item, error) {
	var specs []types.ItemSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return ItemsFromSpecs(specs), nil
}
