package model

// Setting is a generic key/value record. The collection is mostly reserved
// for future use; the seed flag for default goals lives here.
type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}
