package fixture

import "github.com/goccy/go-yaml"

func mapSlice(k string, v any) yaml.MapSlice {
	return yaml.MapSlice{{Key: k, Value: v}}
}
