package layer

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"layercss/common"
)

// IDGenerator produces candidate identifiers for new layers. Store makes
// sure result is unique, so generator may repeat itself.
type IDGenerator interface {
	NextID(name string) string
}

// identifiers are used verbatim as CSS selectors and keyframes names
var identPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// ValidID reports whether id could be used as CSS identifier.
func ValidID(id string) bool {
	return identPattern.MatchString(id)
}

// NewIDGenerator returns generator for requested style.
func NewIDGenerator(style common.IDStyle) IDGenerator {
	switch style {
	case common.IDStyleSlug:
		return &SlugIDs{}
	case common.IDStyleSequence:
		return &SequenceIDs{Prefix: "layer-"}
	default:
		return UUIDs{}
	}
}

// UUIDs produces "layer-<uuid v7>" identifiers.
type UUIDs struct{}

func (UUIDs) NextID(string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "layer-" + id.String()
}

// SequenceIDs produces Prefix followed by increasing counter.
type SequenceIDs struct {
	Prefix string
	n      int
}

func (g *SequenceIDs) NextID(string) string {
	g.n++
	return g.Prefix + strconv.Itoa(g.n)
}

// SlugIDs produces readable identifiers from layer names: "base-layer-1".
type SlugIDs struct {
	n int
}

func (g *SlugIDs) NextID(name string) string {
	g.n++
	base := slug.Make(name)
	id := base + "-" + strconv.Itoa(g.n)
	if base == "" || !ValidID(id) {
		id = "layer-" + id
	}
	return id
}
