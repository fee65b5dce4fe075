package pipeline

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/arnis-go/arnis/pkg/osm"
)

// DumpElements writes one line per element to path: "id\ttype\ttag=value,..."
// with tags sorted by key for determinism. Grounded on
// original_source/src/debug_logging.rs, invoked when --debug is set
// (CLI surface).
func DumpElements(path string, elements []osm.Element) error {
	var sb strings.Builder
	for _, e := range elements {
		sb.WriteString(strconv.FormatUint(e.ID(), 10))
		sb.WriteByte('\t')
		sb.WriteString(elementTypeName(e.Kind))
		sb.WriteByte('\t')
		sb.WriteString(formatTags(e.Tags()))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return wrap(IOError, err)
	}
	return nil
}

func elementTypeName(k osm.ElementKind) string {
	switch k {
		case osm.KindNode:
		return "node"
		case osm.KindWay:
		return "way"
		default:
		return "relation"
	}
}

func formatTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + tags[k]
	}
	return strings.Join(parts, ",")
}
