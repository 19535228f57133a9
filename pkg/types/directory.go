package types

type Provider struct {
	ID      int64   `db:"Provider_ID" json:"id"`
	Name    string  `db:"Name" json:"name"`
	Type    string  `db:"Type" json:"type"`
	Contact string  `db:"Contact" json:"contact"`
	Address string  `db:"Address" json:"address"`
	City    *string `db:"City" json:"city"`
}

type Receiver struct {
	ID      int64   `db:"Receiver_ID" json:"id"`
	Name    string  `db:"Name" json:"name"`
	Type    string  `db:"Type" json:"type"`
	Contact string  `db:"Contact" json:"contact"`
	City    *string `db:"City" json:"city"`
}

type Directory struct {
	City      string      `json:"city"`
	Providers []*Provider `json:"providers"`
	Receivers []*Receiver `json:"receivers"`
}
