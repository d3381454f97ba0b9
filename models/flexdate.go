package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexDate is a point in time that decodes from whichever shape the writing
// client used: a native datetime, a unix-milliseconds number, an RFC 3339 or
// YYYY-MM-DD string, or a Firestore-style {seconds, nanoseconds} object.
// It always encodes back out as a native datetime / RFC 3339 string.
type FlexDate struct {
	time.Time
}

// NewFlexDate wraps a time.Time.
func NewFlexDate(t time.Time) FlexDate {
	return FlexDate{Time: t}
}

func (d *FlexDate) parseString(s string) error {
	if s == "" {
		*d = FlexDate{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	// Bare unix millis occasionally arrive as strings.
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		d.Time = time.UnixMilli(ms)
		return nil
	}
	return fmt.Errorf("unparseable date value %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*d = FlexDate{}
		return nil
	case string:
		return d.parseString(v)
	case float64:
		d.Time = time.UnixMilli(int64(v))
		return nil
	case map[string]interface{}:
		// Serialized provider timestamps: {"seconds": N, "nanoseconds": N}.
		secs, ok := v["seconds"].(float64)
		if !ok {
			secs, ok = v["_seconds"].(float64)
		}
		if !ok {
			return fmt.Errorf("unrecognized date object %v", v)
		}
		nanos, _ := v["nanoseconds"].(float64)
		d.Time = time.Unix(int64(secs), int64(nanos))
		return nil
	default:
		return fmt.Errorf("unrecognized date value %v", raw)
	}
}

// MarshalJSON implements json.Marshaler.
func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (d *FlexDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		d.Time = rv.Time()
		return nil
	case bsontype.String:
		return d.parseString(rv.StringValue())
	case bsontype.Int64:
		d.Time = time.UnixMilli(rv.Int64())
		return nil
	case bsontype.Int32:
		d.Time = time.Unix(int64(rv.Int32()), 0)
		return nil
	case bsontype.Double:
		d.Time = time.UnixMilli(int64(rv.Double()))
		return nil
	case bsontype.Null:
		*d = FlexDate{}
		return nil
	default:
		return fmt.Errorf("cannot decode bson %s into FlexDate", t)
	}
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (d FlexDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}
