package layer

import (
	"fmt"

	"layercss/common"
)

// Set updates a single scalar field of the layer from textual input, the way
// an editor control reports it. Value is parsed according to the field and
// dispatched to the typed setter.
func (s *Store) Set(id string, f Field, raw string) error {
	if tf, ok := transformFields[f]; ok {
		v, err := ParseNumber(tf.String(), raw)
		if err != nil {
			return err
		}
		return s.UpdateTransform(id, tf, v)
	}
	if sf, ok := shadowFields[f]; ok {
		return s.UpdateShadowField(id, sf, raw)
	}

	switch f {
	case FieldName:
		return s.RenameLayer(id, raw)
	case FieldOpacity:
		v, err := ParseNumber("opacity", raw)
		if err != nil {
			return err
		}
		return s.UpdateOpacity(id, v)
	case FieldWidth, FieldHeight:
		sf := SizeFieldWidth
		if f == FieldHeight {
			sf = SizeFieldHeight
		}
		v, err := ParseNumber(sf.String(), raw)
		if err != nil {
			return err
		}
		return s.UpdateSize(id, sf, v)
	case FieldGradientType:
		t, err := common.ParseGradientType(raw)
		if err != nil {
			return fmt.Errorf("gradient type: %w: %w", err, ErrValidation)
		}
		return s.UpdateGradientType(id, t)
	case FieldGradientAngle:
		v, err := ParseNumber("gradient angle", raw)
		if err != nil {
			return err
		}
		return s.UpdateGradientAngle(id, v)
	}
	return fmt.Errorf("field %s: %w", f, ErrValidation)
}

var transformFields = map[Field]TransformField{
	FieldTranslateX: TransformFieldTranslateX,
	FieldTranslateY: TransformFieldTranslateY,
	FieldTranslateZ: TransformFieldTranslateZ,
	FieldScaleX:     TransformFieldScaleX,
	FieldScaleY:     TransformFieldScaleY,
	FieldScaleZ:     TransformFieldScaleZ,
	FieldRotateX:    TransformFieldRotateX,
	FieldRotateY:    TransformFieldRotateY,
	FieldRotateZ:    TransformFieldRotateZ,
}

var shadowFields = map[Field]ShadowField{
	FieldShadowEnabled: ShadowFieldEnabled,
	FieldShadowColor:   ShadowFieldColor,
	FieldShadowX:       ShadowFieldX,
	FieldShadowY:       ShadowFieldY,
	FieldShadowBlur:    ShadowFieldBlur,
}
