// Enumerations shared between configuration and the layer model. Kept apart
// so config does not have to import the model and the model does not have to
// know about configuration.
package common

//go:generate go tool go-enum --marshal --nocase --names --values --mustparse

// Kind of gradient fill.
// ENUM(linear, radial)
type GradientType int

// Animation playback direction.
// ENUM(normal, reverse, alternate, alternate-reverse)
type Direction int

// How fresh layer identifiers are produced.
// ENUM(uuid, slug, sequence)
type IDStyle int

// Settings document encoding.
// ENUM(json, yaml)
type SettingsFormat int

// Ext returns canonical file extension for the format.
func (f SettingsFormat) Ext() string {
	switch f {
	case SettingsFormatJson:
		return ".json"
	case SettingsFormatYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported settings format requested")
	}
}
