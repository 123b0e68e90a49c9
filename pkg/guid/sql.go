package guid

import "database/sql/driver"

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// Value implements driver.Valuer, storing the base64 form.
func (g GUID) Value() (driver.Value, error) {
	return g.String(), nil
}

// Scan implements sql.Scanner. It accepts text forms and raw 16 or 18
// byte columns; NULL scans to Nil.
func (g *GUID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Nil
		return nil
	case string:
		return g.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == Size || len(v) == CompactSize {
			id, err := FromBytes(v)
			if err != nil {
				return err
			}
			*g = id
			return nil
		}
		return g.UnmarshalText(v)
	default:
		return ErrInvalidFormat.WithMessagef("cannot scan %T into GUID", src)
	}
}
