// Package metrics exposes prometheus collectors for the explorer client.
package metrics

const (
	namespace = "blockinsight7000_explorer"
	unknown   = "unknown"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
