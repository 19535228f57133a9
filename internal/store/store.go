package store

import (
	"foodshare/internal/utils"
)

var ident = utils.QuoteIdentifier

const (
	listingTableName  = `"Food_Listings"`
	providerTableName = `"Providers"`
	receiverTableName = `"Receivers"`
)
