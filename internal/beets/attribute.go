package beets

// Attribute is one flexible attribute: a key/value pair attached to an item
// or an album. EntityID refers to the owning row in "items" or "albums"
// depending on which table the attribute came from.
type Attribute struct {
	ID       uint32 `json:"id"`
	EntityID uint32 `json:"entity_id"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

func attributeFields() []field[Attribute] {
	return []field[Attribute]{
		col("id", colUint, func(a *Attribute, v uint32) { a.ID = v }),
		col("entity_id", colUint, func(a *Attribute, v uint32) { a.EntityID = v }),
		col("key", colString, func(a *Attribute, v string) { a.Key = v }),
		col("value", colString, func(a *Attribute, v string) { a.Value = v }),
	}
}

// ItemAttributes is the schema of the "item_attributes" table.
var ItemAttributes = newSchema("item_attributes", attributeFields())

// AlbumAttributes is the schema of the "album_attributes" table.
var AlbumAttributes = newSchema("album_attributes", attributeFields())
