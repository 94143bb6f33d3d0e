package layer

//go:generate go tool go-enum --marshal --nocase --names --values --mustparse

// One of nine 3-D transform components.
// ENUM(translateX, translateY, translateZ, scaleX, scaleY, scaleZ, rotateX, rotateY, rotateZ)
type TransformField int

// Layer box dimension.
// ENUM(width, height)
type SizeField int

// Box shadow attribute.
// ENUM(enabled, color, x, y, blur)
type ShadowField int

// Gradient color stop attribute.
// ENUM(color, alpha, position)
type StopField int

// Animation profile attribute.
// ENUM(duration, delay, iterationCount, direction, timingFunction)
type AnimationField int

// Every scalar attribute of a layer which could be set from textual input.
// ENUM(name, opacity, width, height, translateX, translateY, translateZ, scaleX, scaleY, scaleZ, rotateX, rotateY, rotateZ, gradientType, gradientAngle, shadowEnabled, shadowColor, shadowX, shadowY, shadowBlur)
type Field int
