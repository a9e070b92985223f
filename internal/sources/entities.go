package sources

import (
	"errors"

	"github.com/louisbranch/charmap/internal/charset"
	"github.com/tidwall/gjson"
)

// DecodeEntities parses the named character reference map, keeping keys in
// document order. A repeated key keeps the position of its first occurrence
// and the value of its last.
func DecodeEntities(body []byte) ([]charset.RawEntity, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("decode entities: invalid json")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, errors.New("decode entities: top level must be an object")
	}

	var out []charset.RawEntity
	seen := make(map[string]int)
	root.ForEach(func(key, value gjson.Result) bool {
		entity := charset.RawEntity{
			Key:        key.String(),
			Characters: value.Get("characters").String(),
		}
		if i, ok := seen[entity.Key]; ok {
			out[i] = entity
			return true
		}
		seen[entity.Key] = len(out)
		out = append(out, entity)
		return true
	})
	return out, nil
}
