package report

import (
	"strings"

	"foodshare/pkg/types"
)

// labels maps each report label to the artifact the offline pipeline
// writes for it.
var labels = []struct{ label, file string }{
	{"Providers per City", "Providers_per_City.csv"},
	{"Receivers per City", "Receivers_per_City.csv"},
	{"Provider Type Contributions", "Provider_Type_Contributions.csv"},
	{"Provider Contacts by City", "Provider_Contacts_by_City.csv"},
	{"Top Receivers by Claims", "Top_Receivers_by_Claims.csv"},
	{"Total Food Available", "Total_Food_Available.csv"},
	{"Top City by Listings", "Top_City_by_Listings.csv"},
	{"Most Common Food Types", "Most_Common_Food_Types.csv"},
	{"Claims per Food Item", "Claims_per_Food_Item.csv"},
	{"Top Provider by Successful Claims", "Top_Provider_by_Successful_Claims.csv"},
	{"Claim Status Distribution", "Claim_Status_Distribution.csv"},
	{"Avg Quantity Claimed per Receiver", "Avg_Quantity_Claimed_per_Receiver.csv"},
	{"Most Claimed Meal Type", "Most_Claimed_Meal_Type.csv"},
	{"Total Donated per Provider", "Total_Donated_per_Provider.csv"},
	{"Cities with Highest Demand", "Cities_with_Highest_Demand.csv"},
}

var Definitions = buildDefinitions()

func buildDefinitions() []types.ReportDefinition {
	defs := make([]types.ReportDefinition, 0, len(labels))
	for _, l := range labels {
		defs = append(defs, types.ReportDefinition{
			Label: l.label,
			Slug:  slugify(l.label),
			File:  l.file,
		})
	}
	return defs
}

func slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

// Lookup finds a definition by its label or its slug.
func Lookup(name string) (types.ReportDefinition, bool) {
	for _, def := range Definitions {
		if def.Label == name || def.Slug == name {
			return def, true
		}
	}
	return types.ReportDefinition{}, false
}
